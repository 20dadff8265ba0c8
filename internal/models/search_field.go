package models

import "leadsearch/internal/validation"

// SearchField identifies which lead column a search runs against. The set is
// closed: a field key always resolves to one of the enumerated values, and
// column names never come from request input.
type SearchField string

const (
	FieldFirstName   SearchField = "fname"
	FieldLastName    SearchField = "lname"
	FieldPhoneNumber SearchField = "phone_number"
	FieldEmail       SearchField = "email"
	FieldCRMID       SearchField = "crm_id"
	FieldMarketingID SearchField = "mkt_id"
	FieldCompanyName SearchField = "company_name"
)

// SearchFields lists all fields in display order, for rendering the form.
var SearchFields = []SearchField{
	FieldFirstName,
	FieldLastName,
	FieldPhoneNumber,
	FieldEmail,
	FieldCRMID,
	FieldMarketingID,
	FieldCompanyName,
}

// ParseSearchField resolves a request field key. Unrecognized keys fall back
// to first name rather than erroring.
func ParseSearchField(key string) SearchField {
	switch SearchField(key) {
	case FieldFirstName, FieldLastName, FieldPhoneNumber, FieldEmail,
		FieldCRMID, FieldMarketingID, FieldCompanyName:
		return SearchField(key)
	default:
		return FieldFirstName
	}
}

// Column returns the leads table column this field searches.
func (f SearchField) Column() string {
	switch f {
	case FieldLastName:
		return "lname"
	case FieldPhoneNumber:
		return "phone_number"
	case FieldEmail:
		return "email"
	case FieldCRMID:
		return "crm_id"
	case FieldMarketingID:
		return "mkt_id"
	case FieldCompanyName:
		return "company_name"
	default:
		return "fname"
	}
}

// Label returns the human-readable name used in audit rows. Unknown fields
// report "First Name", matching ParseSearchField's fallback.
func (f SearchField) Label() string {
	switch f {
	case FieldLastName:
		return "Last Name"
	case FieldPhoneNumber:
		return "Phone Number"
	case FieldEmail:
		return "Email"
	case FieldCRMID:
		return "CRM ID"
	case FieldMarketingID:
		return "Marketing ID"
	case FieldCompanyName:
		return "Company Name"
	default:
		return "First Name"
	}
}

// Normalize applies the field's own pre-processing to sanitized search text
// before it is used in a query. Phone searches match on the stored digit
// form, so the input is reduced the same way.
func (f SearchField) Normalize(text string) string {
	if f == FieldPhoneNumber {
		return validation.FormatPhone(text)
	}
	return text
}
