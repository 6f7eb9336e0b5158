// Package xmlreport serializa el registro de activos como documento XML con etree.
package xmlreport

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

var _ ports.ReportRenderer = (*Renderer)(nil)

const rootTag = "AssetRegistry"

// Renderer implementa ports.ReportRenderer.
type Renderer struct{}

// NewRenderer construye el renderer XML.
func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) ContentType() string { return "application/xml" }

func (r *Renderer) Extension() string { return "xml" }

// Render produce:
//
//	<AssetRegistry company=".." currency=".." generated="RFC3339">
//	  <Summary totalValue=".." monthlyBurn=".." upcomingRenewals=".." highRisk=".."/>
//	  <Asset id=".." type=".." status="..">
//	    <Name/>, <Vendor/>, <Amount currency=".."/>, ...
//	  </Asset>
//	</AssetRegistry>
func (r *Renderer) Render(_ context.Context, report dto.RegistryReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(rootTag)
	root.CreateAttr("company", report.CompanyName)
	root.CreateAttr("currency", report.Currency)
	root.CreateAttr("generated", report.GeneratedAt.UTC().Format(time.RFC3339))

	summary := root.CreateElement("Summary")
	summary.CreateAttr("totalValue", report.Stats.TotalValue.String())
	summary.CreateAttr("monthlyBurn", report.Stats.MonthlyBurn.String())
	summary.CreateAttr("upcomingRenewals", strconv.Itoa(report.Stats.UpcomingRenewals))
	summary.CreateAttr("highRisk", strconv.Itoa(report.Stats.HighRiskCount))

	for _, a := range report.Assets {
		writeAsset(root.CreateElement("Asset"), a)
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xml: escribir documento: %w", err)
	}
	return out.Bytes(), nil
}

func writeAsset(el *etree.Element, a entity.Asset) {
	el.CreateAttr("id", a.ID)
	el.CreateAttr("type", string(a.Type))
	el.CreateAttr("status", string(a.Status))

	el.CreateElement("Name").SetText(a.Name)
	el.CreateElement("Vendor").SetText(a.Vendor)
	el.CreateElement("Category").SetText(a.Category)
	el.CreateElement("Department").SetText(a.Department)
	el.CreateElement("Owner").SetText(a.Owner)
	optionalText(el, "LegalEntity", a.LegalEntity)

	amount := el.CreateElement("Amount")
	amount.CreateAttr("currency", a.Currency)
	amount.SetText(a.Amount.String())

	el.CreateElement("BillingCycle").SetText(string(a.BillingCycle))
	optionalText(el, "PurchaseDate", a.PurchaseDate)
	renewalEl := el.CreateElement("NextRenewal")
	if a.Perpetual() {
		renewalEl.CreateAttr("perpetual", "true")
	} else {
		renewalEl.SetText(a.NextRenewal)
	}
	el.CreateElement("AutoRenew").SetText(strconv.FormatBool(a.AutoRenew))
	el.CreateElement("Capex").SetText(strconv.FormatBool(a.Capex))
	optionalText(el, "DepreciationMethod", a.DepreciationMethod)
	el.CreateElement("Seats").SetText(strconv.Itoa(a.Seats))

	if len(a.Assignments) > 0 {
		list := el.CreateElement("Assignments")
		for _, as := range a.Assignments {
			item := list.CreateElement("Assignment")
			item.CreateAttr("id", as.ID)
			item.CreateAttr("assignee", as.Assignee)
			item.CreateAttr("role", as.Role)
			item.CreateAttr("assignedDate", as.AssignedDate)
		}
	}

	optionalText(el, "SerialNumber", a.SerialNumber)
	optionalText(el, "Location", a.Location)
	optionalText(el, "WarrantyExpiry", a.WarrantyExpiry)

	reminders := el.CreateElement("Reminders")
	reminders.CreateAttr("enabled", strconv.FormatBool(a.RemindersEnabled))
	reminders.CreateAttr("daysBefore", strconv.Itoa(a.ReminderDaysBefore))

	textList(el, "Documents", "Document", a.Documents)
	el.CreateElement("RiskScore").SetText(strconv.Itoa(a.RiskScore))
	textList(el, "RiskFactors", "Factor", a.RiskFactors)
	el.CreateElement("Utilization").SetText(strconv.Itoa(a.Utilization))

	if len(a.History) > 0 {
		history := el.CreateElement("History")
		for _, month := range slices.Sorted(maps.Keys(a.History)) {
			entry := history.CreateElement("Spend")
			entry.CreateAttr("month", month)
			entry.SetText(a.History[month].String())
		}
	}
	optionalText(el, "Notes", a.Notes)
}

func optionalText(el *etree.Element, tag, value string) {
	if value != "" {
		el.CreateElement(tag).SetText(value)
	}
}

func textList(el *etree.Element, tag, itemTag string, values []string) {
	if len(values) == 0 {
		return
	}
	list := el.CreateElement(tag)
	for _, v := range values {
		list.CreateElement(itemTag).SetText(v)
	}
}

// Decode lee los activos de un documento producido por Render.
func Decode(data []byte) ([]entity.Asset, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("xml: parsear documento: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != rootTag {
		return nil, fmt.Errorf("xml: se esperaba la raíz <%s>", rootTag)
	}

	elements := root.SelectElements("Asset")
	assets := make([]entity.Asset, 0, len(elements))
	for i, el := range elements {
		a, err := decodeAsset(el)
		if err != nil {
			return nil, fmt.Errorf("xml: activo #%d: %w", i+1, err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func decodeAsset(el *etree.Element) (entity.Asset, error) {
	a := entity.Asset{
		ID:                 el.SelectAttrValue("id", ""),
		Type:               entity.AssetType(el.SelectAttrValue("type", "")),
		Status:             entity.AssetStatus(el.SelectAttrValue("status", "")),
		Name:               childText(el, "Name"),
		Vendor:             childText(el, "Vendor"),
		Category:           childText(el, "Category"),
		Department:         childText(el, "Department"),
		Owner:              childText(el, "Owner"),
		LegalEntity:        childText(el, "LegalEntity"),
		BillingCycle:       entity.BillingCycle(childText(el, "BillingCycle")),
		PurchaseDate:       childText(el, "PurchaseDate"),
		NextRenewal:        childText(el, "NextRenewal"),
		DepreciationMethod: childText(el, "DepreciationMethod"),
		SerialNumber:       childText(el, "SerialNumber"),
		Location:           childText(el, "Location"),
		WarrantyExpiry:     childText(el, "WarrantyExpiry"),
		Documents:          childTexts(el, "Documents", "Document"),
		RiskFactors:        childTexts(el, "RiskFactors", "Factor"),
		Notes:              childText(el, "Notes"),
	}
	if amt := el.SelectElement("Amount"); amt != nil {
		a.Currency = amt.SelectAttrValue("currency", entity.CurrencyIDR)
		d, err := decimal.NewFromString(amt.Text())
		if err != nil {
			return entity.Asset{}, fmt.Errorf("monto inválido en %q: %w", a.Name, err)
		}
		a.Amount = d
	}

	var err error
	if a.AutoRenew, err = parseBool(childText(el, "AutoRenew")); err != nil {
		return entity.Asset{}, fmt.Errorf("AutoRenew: %w", err)
	}
	if a.Capex, err = parseBool(childText(el, "Capex")); err != nil {
		return entity.Asset{}, fmt.Errorf("Capex: %w", err)
	}
	if a.Seats, err = parseInt(childText(el, "Seats")); err != nil {
		return entity.Asset{}, fmt.Errorf("Seats: %w", err)
	}
	if a.RiskScore, err = parseInt(childText(el, "RiskScore")); err != nil {
		return entity.Asset{}, fmt.Errorf("RiskScore: %w", err)
	}
	if a.Utilization, err = parseInt(childText(el, "Utilization")); err != nil {
		return entity.Asset{}, fmt.Errorf("Utilization: %w", err)
	}
	if r := el.SelectElement("Reminders"); r != nil {
		if a.RemindersEnabled, err = parseBool(r.SelectAttrValue("enabled", "")); err != nil {
			return entity.Asset{}, fmt.Errorf("Reminders: %w", err)
		}
		if a.ReminderDaysBefore, err = parseInt(r.SelectAttrValue("daysBefore", "")); err != nil {
			return entity.Asset{}, fmt.Errorf("Reminders: %w", err)
		}
	}

	if list := el.SelectElement("Assignments"); list != nil {
		for _, item := range list.SelectElements("Assignment") {
			a.Assignments = append(a.Assignments, entity.Assignment{
				ID:           item.SelectAttrValue("id", ""),
				Assignee:     item.SelectAttrValue("assignee", ""),
				Role:         item.SelectAttrValue("role", ""),
				AssignedDate: item.SelectAttrValue("assignedDate", ""),
			})
		}
	}
	if history := el.SelectElement("History"); history != nil {
		for _, entry := range history.SelectElements("Spend") {
			d, err := decimal.NewFromString(entry.Text())
			if err != nil {
				return entity.Asset{}, fmt.Errorf("History %s: %w", entry.SelectAttrValue("month", ""), err)
			}
			if a.History == nil {
				a.History = make(map[string]decimal.Decimal)
			}
			a.History[entry.SelectAttrValue("month", "")] = d
		}
	}
	return a, nil
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return ""
}

func childTexts(el *etree.Element, tag, itemTag string) []string {
	list := el.SelectElement(tag)
	if list == nil {
		return nil
	}
	var out []string
	for _, item := range list.SelectElements(itemTag) {
		out = append(out, item.Text())
	}
	return out
}

// parseBool y parseInt tratan el texto vacío como valor cero.
func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
