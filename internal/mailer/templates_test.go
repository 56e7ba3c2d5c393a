package mailer

import (
	"strings"
	"testing"
)

func sampleEmailData() EmailData {
	return EmailData{
		OrderID:        "ord-1",
		CustomerName:   "Nilu <Perera>",
		CustomerEmail:  "nilu@example.com",
		ItemName:       "Chicken Lamprais",
		Quantity:       2,
		PricePerItem:   25,
		TotalPrice:     50,
		PickupLocation: "Scarborough",
		PickupAddress:  "123 Kennedy Rd",
		PickupTimeSlot: "12:00 PM - 2:00 PM",
		EventDate:      "Saturday, March 14, 2026",
		Currency:       "CAD",
	}
}

func TestConfirmationEmail(t *testing.T) {
	d := sampleEmailData()
	d.EtransferEmail = "pay@lokucaters.dev"

	subject, html := ConfirmationEmail(d)
	if subject != "Your Chicken Lamprais Pre-Order is Confirmed" {
		t.Fatalf("unexpected subject %q", subject)
	}

	for _, want := range []string{
		"Nilu &lt;Perera&gt;",
		"Chicken Lamprais x 2",
		"CAD $25.00",
		"CAD $50.00",
		"Saturday, March 14, 2026",
		"Scarborough - 123 Kennedy Rd",
		"12:00 PM - 2:00 PM",
		"Payment by e-Transfer",
		"pay@lokucaters.dev",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("confirmation email missing %q", want)
		}
	}
}

func TestConfirmationEmailWithoutEtransfer(t *testing.T) {
	_, html := ConfirmationEmail(sampleEmailData())
	if strings.Contains(html, "Payment by e-Transfer") {
		t.Fatal("e-transfer section rendered without an address")
	}
}

func TestReminderEmail(t *testing.T) {
	d := sampleEmailData()
	d.EtransferEmail = "pay@lokucaters.dev"

	subject, html := ReminderEmail(d)
	if subject != "Pickup Reminder - Your Chicken Lamprais Order" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(html, "friendly reminder") {
		t.Fatal("reminder email missing reminder intro")
	}
	if !strings.Contains(html, "please disregard this notice") {
		t.Fatal("reminder email missing reminder e-transfer copy")
	}
}

func TestLocationDisplayWithoutAddress(t *testing.T) {
	d := sampleEmailData()
	d.PickupAddress = ""
	if got := d.LocationDisplay(); got != "Scarborough" {
		t.Fatalf("LocationDisplay() = %q, want %q", got, "Scarborough")
	}
}
