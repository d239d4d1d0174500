package output

import (
	"fmt"
	"os"

	"github.com/agentstation/utc"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/fieldlinehq/fieldline/pkg/crm"
)

// FormatRecords handles the common pattern of formatting records for output.
// Table formats get object-specific columns; structured formats get the
// records themselves.
func FormatRecords(object crm.ObjectType, records []crm.Record, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, "":
		outputData = RecordsToTableData(object, records, format == FormatWide)
	default:
		outputData = records
	}

	return formatter.Format(os.Stdout, outputData)
}

// RecordsToTableData converts records to table format with columns chosen
// per object type. Wide adds the store-stamped audit timestamps.
func RecordsToTableData(object crm.ObjectType, records []crm.Record, wide bool) Data {
	data := Data{}

	switch object {
	case crm.ObjectAccount:
		data.Headers = []string{"ID", "Name", "Industry", "Description"}
	case crm.ObjectContact:
		data.Headers = []string{"ID", "First Name", "Last Name", "Email", "Account ID"}
	case crm.ObjectOpportunity:
		data.Headers = []string{"ID", "Name", "Stage", "Close Date", "Amount", "Account ID"}
		data.ColumnAlignment = []tw.Align{tw.Skip, tw.Skip, tw.Skip, tw.Skip, tw.AlignRight, tw.Skip}
	case crm.ObjectLead:
		data.Headers = []string{"ID", "First Name", "Last Name", "Company", "Source"}
	case crm.ObjectCase:
		data.Headers = []string{"ID", "Subject", "Status", "Origin", "Account ID"}
	default:
		data.Headers = []string{"ID"}
	}

	if wide {
		data.Headers = append(data.Headers, "Created", "Updated")
		if len(data.ColumnAlignment) > 0 {
			data.ColumnAlignment = append(data.ColumnAlignment, tw.Skip, tw.Skip)
		}
	}

	data.Rows = make([][]string, 0, len(records))
	for _, record := range records {
		row := recordRow(object, record)
		if wide {
			system := record.System()
			row = append(row, formatTimestamp(system.CreatedAt), formatTimestamp(system.UpdatedAt))
		}
		data.Rows = append(data.Rows, row)
	}

	return data
}

// recordRow builds one table row for a record. Unknown object types fall
// back to the identifier alone.
func recordRow(object crm.ObjectType, record crm.Record) []string {
	switch object {
	case crm.ObjectAccount:
		a, ok := record.(*crm.Account)
		if !ok {
			break
		}
		return []string{a.ID, a.Name, orDash(a.Industry), orDash(a.Description)}
	case crm.ObjectContact:
		c, ok := record.(*crm.Contact)
		if !ok {
			break
		}
		return []string{c.ID, orDash(c.FirstName), c.LastName, orDash(c.Email), orDash(c.AccountID)}
	case crm.ObjectOpportunity:
		o, ok := record.(*crm.Opportunity)
		if !ok {
			break
		}
		return []string{o.ID, o.Name, o.Stage.String(), o.CloseDate.String(), formatAmount(o.Amount), orDash(o.AccountID)}
	case crm.ObjectLead:
		l, ok := record.(*crm.Lead)
		if !ok {
			break
		}
		return []string{l.ID, orDash(l.FirstName), l.LastName, l.Company, orDash(l.Source)}
	case crm.ObjectCase:
		c, ok := record.(*crm.Case)
		if !ok {
			break
		}
		return []string{c.ID, c.Subject, orDash(c.Status), orDash(c.Origin), orDash(c.AccountID)}
	}
	return []string{record.RecordID()}
}

// formatAmount formats a deal amount for display.
func formatAmount(amount float64) string {
	if amount == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", amount)
}

// formatTimestamp formats a store timestamp for display.
func formatTimestamp(t utc.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// orDash substitutes a dash for empty optional fields.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
