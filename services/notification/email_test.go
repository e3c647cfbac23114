package notification

import (
	"context"
	"testing"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "clinic@example.com",
	})

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "clinic@example.com",
	})

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "Doctors Portal" {
		t.Errorf("expected default from name 'Doctors Portal', got %q", sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "patient@example.com",
		Subject: "Test",
		Body:    "Test body",
	})

	if err == nil {
		t.Error("expected error when client is nil")
	}
}

func TestStubEmailSender_Send(t *testing.T) {
	sender := &StubEmailSender{}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "patient@example.com",
		Subject: "Test Subject",
		Body:    "Test body",
	})

	if err != nil {
		t.Errorf("stub sender should not return error, got: %v", err)
	}
}
