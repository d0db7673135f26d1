// Package render turns an offer into its canonical printable HTML document.
// The output is self-contained markup suitable for a browser print engine or
// an external PDF converter; rasterization is out of scope.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/vis-sol/offerflow/internal/config"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/pricing"
)

const offerHTMLTemplate = `<!DOCTYPE html>
<html lang="pl">
<head>
  <meta charset="UTF-8">
  <title>Oferta {{.Offer.Number}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: Arial, sans-serif;
      padding: 40px;
      font-size: 12px;
      line-height: 1.6;
      color: #333;
    }
    .header { margin-bottom: 30px; }
    .header-main { font-size: 32px; font-weight: bold; color: #000; }
    .header-sub { font-size: 16px; color: #00f0ff; margin-top: 5px; }
    .contact-bar {
      font-size: 11px;
      color: #666;
      margin-top: 10px;
      padding-bottom: 10px;
      border-bottom: 1px solid #eee;
    }
    .title { font-size: 24px; text-align: center; margin: 30px 0; font-weight: bold; }
    .section { margin-bottom: 25px; }
    .section-title {
      font-size: 14px;
      font-weight: bold;
      margin-bottom: 12px;
      background-color: #f5f5f5;
      padding: 10px;
    }
    .grid-container { display: flex; margin-bottom: 8px; }
    .grid-label { width: 40%; font-weight: bold; }
    .grid-value { width: 60%; }
    .parties { display: flex; gap: 30px; }
    .party { flex: 1; }
    .party-title { font-weight: bold; margin-bottom: 8px; }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-top: 15px;
      border: 1px solid #ddd;
    }
    th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
    th { background-color: #f8f8f8; font-weight: bold; }
    .total-row { font-weight: bold; background-color: #f0f0f0; }
    .conditions { line-height: 1.8; }
    .footer {
      margin-top: 40px;
      font-size: 10px;
      color: #888;
      text-align: center;
      border-top: 1px solid #eee;
      padding-top: 20px;
    }
    .signature { margin-top: 40px; }
  </style>
</head>
<body>
  <div class="header">
    <div class="header-main">{{.Issuer.CompanyName}}</div>
    <div class="header-sub">{{.Issuer.Tagline}}</div>
    <div class="contact-bar">{{.Issuer.Email}} | {{.Issuer.Phone}} | {{.Issuer.Website}}</div>
  </div>

  <div class="title">OFERTA HANDLOWA</div>

  <div class="section">
    <div class="section-title">Szczegóły oferty</div>
    <div class="grid-container">
      <div class="grid-label">Numer oferty:</div>
      <div class="grid-value">{{.Offer.Number}}</div>
    </div>
    <div class="grid-container">
      <div class="grid-label">Data wystawienia:</div>
      <div class="grid-value">{{formatDate .Offer.CreatedAt}}</div>
    </div>
    <div class="grid-container">
      <div class="grid-label">Ważna do:</div>
      <div class="grid-value">{{formatDate .Offer.ValidUntil}}</div>
    </div>
    <div class="grid-container">
      <div class="grid-label">Status:</div>
      <div class="grid-value">{{.StatusLabel}}</div>
    </div>
  </div>

  <div class="section">
    <div class="section-title">Dane stron</div>
    <div class="parties">
      <div class="party">
        <div class="party-title">SPRZEDAWCA:</div>
        <div>{{.Issuer.CompanyName}}</div>
        <div>{{.Issuer.Email}}</div>
        <div>{{.Issuer.Phone}}</div>
      </div>
      <div class="party">
        <div class="party-title">ODBIORCA:</div>
        <div>{{.Offer.ClientName}}</div>
        {{if .Offer.ClientContactPerson}}<div>{{.Offer.ClientContactPerson}}</div>{{end}}
        {{if .Offer.ClientEmail}}<div>{{.Offer.ClientEmail}}</div>{{end}}
        {{if .Offer.ClientPhone}}<div>{{.Offer.ClientPhone}}</div>{{end}}
      </div>
    </div>
  </div>

  <div class="section">
    <div class="section-title">Przedmiot oferty</div>
    <div><strong>Projekt:</strong> {{.Offer.ProjectName}}</div>
    <table>
      <thead>
        <tr>
          <th style="width: 50px;">Lp.</th>
          <th>Nazwa usługi</th>
          <th style="width: 80px;">Ilość [godz.]</th>
          <th style="width: 100px;">Cena j. netto</th>
          <th style="width: 120px;">Wartość netto</th>
        </tr>
      </thead>
      <tbody>
        {{range $index, $item := .Offer.Items}}
        <tr>
          <td>{{inc $index}}</td>
          <td>{{$item.Name}}</td>
          <td>{{formatHours $item.Quantity}}</td>
          <td>{{formatMoney $item.UnitPrice}}</td>
          <td>{{formatMoney $item.LineTotal}}</td>
        </tr>
        {{end}}
        <tr class="total-row">
          <td colspan="4">RAZEM DO ZAPŁATY (brutto):</td>
          <td>{{.GrandTotal}}</td>
        </tr>
      </tbody>
    </table>
  </div>

  <div class="section">
    <div class="section-title">Warunki współpracy</div>
    <div class="conditions">
      • Płatność: 50% zaliczki po akceptacji oferty, 50% po odbiorze.<br>
      • Dokument: Faktura VAT-RR (zwolnienie podmiotowe) lub rachunek.<br>
      • Termin realizacji: Indywidualnie, szacunkowo {{formatHours .TotalHours}} godzin roboczych.<br>
      • Gwarancja: Rękojmia zgodnie z Kodeksem cywilnym.
    </div>
  </div>

  <div class="signature">
    Data i podpis odbiorcy: _________________________________________
  </div>

  <div class="footer">
    <div>Dziękujemy za zaufanie! {{.Issuer.CompanyName}} – Twoja wizja, nasza technologia.</div>
    <div style="margin-top: 15px;">Wygenerowano: {{formatTimestamp .GeneratedAt}}</div>
  </div>
</body>
</html>
`

// polishMonths holds month names in the genitive form used for long dates.
var polishMonths = [...]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

// FormatLongDate renders a date the way pl-PL long form does, e.g.
// "15 stycznia 2025".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), polishMonths[t.Month()-1], t.Year())
}

// templateData is the deterministic input handed to the HTML template.
type templateData struct {
	Issuer      *config.IssuerConfig
	Offer       *domain.Offer
	StatusLabel string
	GrandTotal  string
	TotalHours  float64
	GeneratedAt time.Time
}

// Renderer maps an Offer to its printable document.
type Renderer struct {
	issuer *config.IssuerConfig
	tmpl   *template.Template
}

// NewRenderer parses the document template once; the issuer identity block
// comes from configuration.
func NewRenderer(issuer *config.IssuerConfig) (*Renderer, error) {
	tmpl, err := template.New("offer").Funcs(template.FuncMap{
		"formatDate":      FormatLongDate,
		"formatMoney":     pricing.FormatAmount,
		"formatHours":     formatHours,
		"formatTimestamp": formatTimestamp,
		"inc":             func(i int) int { return i + 1 },
	}).Parse(offerHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse offer template: %w", err)
	}
	return &Renderer{issuer: issuer, tmpl: tmpl}, nil
}

// Render produces the printable document for the offer. Output is
// deterministic for a given offer and generatedAt; the grand-total row
// reproduces the stored amount and is never recomputed from the items.
func (r *Renderer) Render(offer *domain.Offer, generatedAt time.Time) ([]byte, error) {
	data := templateData{
		Issuer:      r.issuer,
		Offer:       offer,
		StatusLabel: offer.Status.Label(),
		GrandTotal:  pricing.FormatAmount(offer.Amount),
		TotalHours:  pricing.TotalHours(offer.Items),
		GeneratedAt: generatedAt,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render offer %s: %w", offer.Number, err)
	}
	return buf.Bytes(), nil
}

// formatHours prints a quantity without trailing zeros (20, not 20.00)
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

// formatTimestamp matches the pl-PL locale short timestamp: 15.01.2025, 14:30:05
func formatTimestamp(t time.Time) string {
	return t.Format("02.01.2006, 15:04:05")
}
