package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/raushankrgupta/nutritrack/models"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var testUser = models.User{Name: "Ana", Email: "ana@example.com"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSendGrid struct {
	sent     *mail.SGMailV3
	response *rest.Response
	err      error
}

func (s *stubSendGrid) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	s.sent = email
	return s.response, s.err
}

func TestSendGridNotifier(t *testing.T) {
	stub := &stubSendGrid{response: &rest.Response{StatusCode: 202}}
	n := &SendGridNotifier{client: stub, from: mail.NewEmail("NutriTrack", "no-reply@example.com"), logger: discardLogger()}

	if err := n.SendResetCode(context.Background(), testUser, "123456"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if stub.sent == nil || stub.sent.Subject != resetSubject {
		t.Fatalf("unexpected message: %+v", stub.sent)
	}
	if got := stub.sent.Personalizations[0].To[0].Address; got != testUser.Email {
		t.Fatalf("expected recipient %s, got %s", testUser.Email, got)
	}
	if !strings.Contains(stub.sent.Content[0].Value, "123456") {
		t.Fatalf("code missing from body: %q", stub.sent.Content[0].Value)
	}
}

func TestSendGridNotifierAPIError(t *testing.T) {
	stub := &stubSendGrid{response: &rest.Response{StatusCode: 401, Body: "unauthorized"}}
	n := &SendGridNotifier{client: stub, from: mail.NewEmail("NutriTrack", "no-reply@example.com"), logger: discardLogger()}
	if err := n.SendResetCode(context.Background(), testUser, "123456"); err == nil {
		t.Fatal("expected error on 4xx response")
	}

	stub = &stubSendGrid{err: errors.New("network down")}
	n.client = stub
	if err := n.SendResetCode(context.Background(), testUser, "123456"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestNewSendGridRequiresKey(t *testing.T) {
	if _, err := NewSendGridNotifier("", "x", "x@example.com", discardLogger()); err == nil {
		t.Fatal("expected error without API key")
	}
}

type stubSES struct {
	input *ses.SendEmailInput
	err   error
}

func (s *stubSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	s.input = in
	return &ses.SendEmailOutput{}, s.err
}

func TestSESNotifier(t *testing.T) {
	stub := &stubSES{}
	n := &SESNotifier{client: stub, source: "no-reply@example.com", logger: discardLogger()}
	if err := n.SendResetCode(context.Background(), testUser, "654321"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if stub.input.Destination.ToAddresses[0] != testUser.Email {
		t.Fatalf("unexpected destination: %v", stub.input.Destination.ToAddresses)
	}
	if !strings.Contains(*stub.input.Message.Body.Text.Data, "654321") {
		t.Fatalf("code missing from text body")
	}

	stub.err = errors.New("throttled")
	if err := n.SendResetCode(context.Background(), testUser, "654321"); err == nil {
		t.Fatal("expected SES error to propagate")
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if err := NewLogNotifier(logger).SendResetCode(context.Background(), testUser, "111222"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(buf.String(), "111222") {
		t.Fatalf("expected code in debug log, got %s", buf.String())
	}
}

func TestNewSelectsProvider(t *testing.T) {
	n, err := New(context.Background(), discardLogger(), Options{Provider: "log"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := n.(*LogNotifier); !ok {
		t.Fatalf("expected LogNotifier, got %T", n)
	}
	if _, err := New(context.Background(), discardLogger(), Options{Provider: "pigeon"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
