package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// EmailData carries everything the order email templates interpolate.
type EmailData struct {
	OrderID        string
	CustomerName   string
	CustomerEmail  string
	ItemName       string
	Quantity       int
	PricePerItem   float64
	TotalPrice     float64
	PickupLocation string
	PickupAddress  string
	PickupTimeSlot string
	EventDate      string
	Currency       string
	EtransferEmail string
}

func (d EmailData) LocationDisplay() string {
	if d.PickupAddress != "" {
		return d.PickupLocation + " - " + d.PickupAddress
	}
	return d.PickupLocation
}

func (d EmailData) PricePerItemDisplay() string {
	return fmt.Sprintf("%s $%.2f", d.Currency, d.PricePerItem)
}

func (d EmailData) TotalDisplay() string {
	return fmt.Sprintf("%s $%.2f", d.Currency, d.TotalPrice)
}

const etransferConfirmationCopy = "If you would like to pay by e-Transfer, you are welcome to send your payment to " +
	"<strong>%s</strong> at your convenience - any time before your scheduled pickup."

const etransferReminderCopy = "If you have not yet sent your e-Transfer payment, you are welcome to do so at any time " +
	"before your pickup by sending to <strong>%s</strong>. If you have already sent your payment, " +
	"please disregard this notice."

func (d EmailData) etransferSection(reminder bool) template.HTML {
	addr := strings.TrimSpace(d.EtransferEmail)
	if addr == "" {
		return ""
	}
	copyHTML := fmt.Sprintf(etransferConfirmationCopy, template.HTMLEscapeString(addr))
	if reminder {
		copyHTML = fmt.Sprintf(etransferReminderCopy, template.HTMLEscapeString(addr))
	}
	return template.HTML(fmt.Sprintf(`
              <table width="100%%" cellpadding="0" cellspacing="0" style="background:#fdf8f0;border-radius:12px;overflow:hidden;margin-bottom:24px;border:1px solid #e8d9b8;">
                <tr>
                  <td style="padding:20px 24px;">
                    <p style="margin:0 0 6px;font-size:14px;font-weight:700;color:#7a5a1a;">Payment by e-Transfer</p>
                    <p style="margin:0;font-size:14px;color:#8a6a2a;line-height:1.6;">
                      %s
                    </p>
                  </td>
                </tr>
              </table>
`, copyHTML))
}

type emailView struct {
	EmailData
	Title            string
	Heading          string
	Intro            template.HTML
	SummaryHeading   string
	Outro            string
	EtransferSection template.HTML
}

var orderEmailTmpl = template.Must(template.New("order-email").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>{{.Title}} - Loku Caters</title>
</head>
<body style="margin:0;padding:0;background:#F7F5F0;font-family:'Inter',Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background:#F7F5F0;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background:#ffffff;border-radius:16px;overflow:hidden;box-shadow:0 4px 24px rgba(18,39,15,0.08);">

          <tr>
            <td style="background:#12270F;padding:36px 40px;text-align:center;">
              <p style="margin:0;font-size:11px;letter-spacing:3px;text-transform:uppercase;color:#729152;font-weight:600;">Loku Caters</p>
              <h1 style="margin:8px 0 0;font-size:26px;font-weight:700;color:#F7F5F0;font-family:Georgia,serif;">{{.Heading}}</h1>
            </td>
          </tr>

          <tr>
            <td style="padding:40px;">
              <p style="margin:0 0 8px;font-size:16px;color:#1C1C1A;">Hi <strong>{{.CustomerName}}</strong>,</p>
              <p style="margin:0 0 28px;font-size:15px;color:#4a4a4a;line-height:1.6;">
                {{.Intro}}
              </p>

              <table width="100%" cellpadding="0" cellspacing="0" style="background:#F7F5F0;border-radius:12px;overflow:hidden;margin-bottom:28px;">
                <tr>
                  <td style="padding:20px 24px;border-bottom:1px solid #e8e4dc;">
                    <p style="margin:0;font-size:11px;letter-spacing:2px;text-transform:uppercase;color:#729152;font-weight:600;">{{.SummaryHeading}}</p>
                  </td>
                </tr>
                <tr>
                  <td style="padding:20px 24px;">
                    <table width="100%" cellpadding="0" cellspacing="0">
                      <tr>
                        <td style="font-size:14px;color:#4a4a4a;padding:6px 0;">Item</td>
                        <td style="font-size:14px;color:#1C1C1A;font-weight:600;text-align:right;padding:6px 0;">{{.ItemName}} x {{.Quantity}}</td>
                      </tr>
                      <tr>
                        <td style="font-size:14px;color:#4a4a4a;padding:6px 0;">Price per item</td>
                        <td style="font-size:14px;color:#1C1C1A;font-weight:600;text-align:right;padding:6px 0;">{{.PricePerItemDisplay}}</td>
                      </tr>
                      <tr>
                        <td style="font-size:14px;color:#4a4a4a;padding:6px 0;">Pickup Date</td>
                        <td style="font-size:14px;color:#1C1C1A;font-weight:600;text-align:right;padding:6px 0;">{{.EventDate}}</td>
                      </tr>
                      <tr>
                        <td style="font-size:14px;color:#4a4a4a;padding:6px 0;">Pickup Location</td>
                        <td style="font-size:14px;color:#1C1C1A;font-weight:600;text-align:right;padding:6px 0;">{{.LocationDisplay}}</td>
                      </tr>
                      <tr>
                        <td style="font-size:14px;color:#4a4a4a;padding:6px 0;">Time Slot</td>
                        <td style="font-size:14px;color:#1C1C1A;font-weight:600;text-align:right;padding:6px 0;">{{.PickupTimeSlot}}</td>
                      </tr>
                      <tr>
                        <td colspan="2" style="padding:12px 0 0;border-top:1px solid #d8d4cc;"></td>
                      </tr>
                      <tr>
                        <td style="font-size:16px;color:#12270F;font-weight:700;padding:4px 0;">Total</td>
                        <td style="font-size:16px;color:#12270F;font-weight:700;text-align:right;padding:4px 0;">{{.TotalDisplay}}</td>
                      </tr>
                    </table>
                  </td>
                </tr>
              </table>

{{.EtransferSection}}

              <p style="margin:0;font-size:15px;color:#4a4a4a;line-height:1.6;">
                {{.Outro}}
              </p>
            </td>
          </tr>

          <tr>
            <td style="background:#12270F;padding:24px 40px;text-align:center;">
              <p style="margin:0;font-size:13px;color:#729152;">2026 Loku Caters - Authentic Sri Lankan Cuisine</p>
            </td>
          </tr>

        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

func renderOrderEmail(view emailView) string {
	var sb strings.Builder
	if err := orderEmailTmpl.Execute(&sb, view); err != nil {
		// template and view are fixed at compile time
		panic(err)
	}
	return sb.String()
}

func ConfirmationEmail(d EmailData) (subject, html string) {
	view := emailView{
		EmailData: d,
		Title:     "Order Confirmation",
		Heading:   "Order Confirmed!",
		Intro: template.HTML("Great news! Your Lamprais pre-order has been confirmed. We are so excited to cook this up for you. " +
			"Please see your order details and pickup information below."),
		SummaryHeading:   "Order Summary",
		Outro:            "We look forward to serving you! If you have any questions, simply reply to this email.",
		EtransferSection: d.etransferSection(false),
	}
	subject = fmt.Sprintf("Your %s Pre-Order is Confirmed", d.ItemName)
	return subject, renderOrderEmail(view)
}

func ReminderEmail(d EmailData) (subject, html string) {
	intro := fmt.Sprintf("Just a friendly reminder that your Lamprais order will be ready for pickup on <strong>%s</strong> "+
		"at <strong>%s</strong> during your selected time slot. We look forward to seeing you soon!",
		template.HTMLEscapeString(d.EventDate), template.HTMLEscapeString(d.LocationDisplay()))
	view := emailView{
		EmailData:        d,
		Title:            "Pickup Reminder",
		Heading:          "Pickup Reminder!",
		Intro:            template.HTML(intro),
		SummaryHeading:   "Your Order",
		Outro:            "If you have any questions, simply reply to this email.",
		EtransferSection: d.etransferSection(true),
	}
	subject = fmt.Sprintf("Pickup Reminder - Your %s Order", d.ItemName)
	return subject, renderOrderEmail(view)
}
