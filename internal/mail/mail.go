// Package mail sends transactional mail over SMTP. The dispatcher is an
// explicitly constructed client injected where needed; nothing here reads the
// environment on its own.
package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"github.com/google/uuid"
	gomail "gopkg.in/gomail.v2"
)

// Options configures the dispatcher. Missing Username/Password put it in
// skip mode: sends are logged and reported as skipped, never attempted.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	BaseURL  string
}

// SendResult is the structured outcome of a send. Failures are reported here
// and never propagated to the caller as a hard error.
type SendResult struct {
	Success   bool
	Skipped   bool
	MessageID string
	Err       error
}

type Dispatcher struct {
	opts Options
	// send is swappable so tests can observe dispatch without a network
	send func(m *gomail.Message) error
}

func NewDispatcher(opts Options) *Dispatcher {
	d := &Dispatcher{opts: opts}
	if d.Configured() {
		dialer := gomail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password)
		d.send = func(m *gomail.Message) error { return dialer.DialAndSend(m) }
	}
	return d
}

func (d *Dispatcher) Configured() bool {
	return d.opts.Username != "" && d.opts.Password != ""
}

type SummaryItem struct {
	Name     string
	Quantity int
}

// OrderSummary carries what the notification mail needs about an order.
type OrderSummary struct {
	ID          string
	TotalAmount string
	Items       []SummaryItem
}

// ShortID is the last six characters of the order id, matching the reference
// shown to the store in its dashboard.
func (o OrderSummary) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}

var orderTmpl = template.Must(template.New("order").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>New Order Alert!</h2>
    <p>You have received a new order with ID: <strong>#{{.Order.ShortID}}</strong></p>
    <p><strong>Total Amount:</strong> &#8377;{{.Order.TotalAmount}}</p>
    <p><strong>Items:</strong></p>
    <ul>
        {{range .Order.Items}}<li>{{.Quantity}}x {{.Name}}</li>{{end}}
    </ul>
    <p>Please login to your dashboard to manage this order.</p>
    <div style="margin-top: 20px;">
        <a href="{{.BaseURL}}" style="background-color: #0070f3; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">
            Go to Dashboard
        </a>
    </div>
</div>
`))

// SendOrderNotification composes and sends the new-order mail to the store.
// When credentials are absent the send is skipped with a warning; a transport
// failure comes back inside the result.
func (d *Dispatcher) SendOrderNotification(to string, summary OrderSummary) SendResult {
	if !d.Configured() {
		log.Printf("[mail] configuration missing, skipping order notification")
		return SendResult{Success: true, Skipped: true}
	}

	var body bytes.Buffer
	if err := orderTmpl.Execute(&body, struct {
		Order   OrderSummary
		BaseURL string
	}{summary, d.opts.BaseURL}); err != nil {
		return SendResult{Err: fmt.Errorf("render mail: %w", err)}
	}

	msgID := fmt.Sprintf("<%s@campus-delivery>", uuid.NewString())
	m := gomail.NewMessage()
	m.SetHeader("From", d.opts.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New Order Received: #%s", summary.ShortID()))
	m.SetHeader("Message-ID", msgID)
	m.SetBody("text/html", body.String())

	if err := d.send(m); err != nil {
		log.Printf("[mail] send to %s failed: %v", to, err)
		return SendResult{Err: err}
	}
	log.Printf("[mail] sent %s", msgID)
	return SendResult{Success: true, MessageID: msgID}
}
