package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Kind
	err  error
}

func (r *recordingSender) Send(_ context.Context, kind Kind, _ string, _ Data) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, kind)
	return r.err
}

func TestDispatcher_DeliversAndDrains(t *testing.T) {
	s := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(s)

	d.Notify(KindRequestApproved, "ana@example.com", Data{"Name": "Ana", "Pet": "Toby"})
	d.Notify(KindAppointmentCancelled, "ana@example.com", nil)
	d.Notify(KindAppointmentCancelled, "", nil) // sin destinatario: se ignora
	d.Close()

	if len(s.sent) != 2 {
		t.Fatalf("expected 2 sends, got %v", s.sent)
	}
}

func TestDispatcher_NotifyAfterCloseIsDropped(t *testing.T) {
	s := &recordingSender{}
	d := NewDispatcher(s)
	d.Close()

	d.Notify(KindRequestApproved, "ana@example.com", nil)
	d.Close()

	if len(s.sent) != 0 {
		t.Fatalf("expected no sends after close, got %v", s.sent)
	}
}

func TestRender_AllKinds(t *testing.T) {
	data := Data{"Name": "Ana", "Pet": "Toby", "Link": "https://x", "When": "1 de mayo", "Type": "curp", "Reason": "ilegible"}
	for kind := range templates {
		subject, body, err := Render(kind, data)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if subject == "" || !strings.Contains(body, "Ana") {
			t.Fatalf("%s: unexpected output %q / %q", kind, subject, body)
		}
	}

	if _, _, err := Render(Kind("nope"), nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	_, body, err := Render(KindDocumentRejected, Data{"Name": "<script>", "Type": "curp", "Reason": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("name was not escaped: %s", body)
	}
}

func TestSMTPSender_BuildsEnvelope(t *testing.T) {
	var gotAddr, gotFrom string
	var gotMsg []byte

	s := NewSMTPSender(SMTPConfig{Host: "smtp.local", Port: 2525, From: "Refugio <no-reply@refugio.mx>"})
	s.send = func(addr string, _ smtp.Auth, from string, _ []string, msg []byte) error {
		gotAddr, gotFrom, gotMsg = addr, from, msg
		return nil
	}

	if err := s.Send(context.Background(), KindPasswordReset, "ana@example.com", Data{"Name": "Ana", "Link": "https://r"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotAddr != "smtp.local:2525" || gotFrom != "no-reply@refugio.mx" {
		t.Fatalf("unexpected envelope addr=%s from=%s", gotAddr, gotFrom)
	}
	if !strings.Contains(string(gotMsg), "Subject: Restablece tu contraseña") {
		t.Fatalf("missing subject:\n%s", gotMsg)
	}
}
