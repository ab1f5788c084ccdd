package entities

import (
	"testing"

	"payledger/internal/domain/money"
)

func TestPaymentDeriveStatus(t *testing.T) {
	cases := []struct {
		name       string
		authorized string
		captured   string
		refunded   string
		status     PaymentStatus
		want       PaymentStatus
	}{
		{"no refunds keeps authorized", "100.00", "0.00", "0.00", PaymentStatusAuthorized, PaymentStatusAuthorized},
		{"no refunds keeps captured", "100.00", "100.00", "0.00", PaymentStatusCaptured, PaymentStatusCaptured},
		{"partial refund", "100.00", "100.00", "40.00", PaymentStatusCaptured, PaymentStatusPartiallyRefunded},
		{"full refund", "100.00", "100.00", "100.00", PaymentStatusCaptured, PaymentStatusRefunded},
		{"refund equal to partial capture", "100.00", "60.00", "60.00", PaymentStatusAuthorized, PaymentStatusRefunded},
		{"voided is terminal", "100.00", "100.00", "100.00", PaymentStatusVoided, PaymentStatusVoided},
		{"failed is terminal", "100.00", "0.00", "0.00", PaymentStatusFailed, PaymentStatusFailed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Payment{
				AmountAuthorized: money.Parse(c.authorized),
				AmountCaptured:   money.Parse(c.captured),
				AmountRefunded:   money.Parse(c.refunded),
				Status:           c.status,
			}
			p.DeriveStatus()
			if p.Status != c.want {
				t.Fatalf("status = %s, want %s", p.Status, c.want)
			}
		})
	}
}

func TestPaymentRemainders(t *testing.T) {
	p := Payment{
		AmountAuthorized: money.Parse("100.00"),
		AmountCaptured:   money.Parse("70.00"),
		AmountRefunded:   money.Parse("30.00"),
	}
	if got := p.CaptureRemaining().String(); got != "30.00" {
		t.Fatalf("CaptureRemaining = %s", got)
	}
	if got := p.Refundable().String(); got != "40.00" {
		t.Fatalf("Refundable = %s", got)
	}
}
