package models

import (
	"strings"
	"time"
)

// Lead represents a CRM contact record scoped to an owner. This subsystem
// only reads leads; creation and updates happen elsewhere.
type Lead struct {
	ID             int64     `json:"id"`
	OwnerID        int64     `json:"owner_id"`
	FirstName      string    `json:"fname"`
	LastName       string    `json:"lname"`
	PhoneNumber    string    `json:"phone_number"`
	SecondaryPhone string    `json:"secondary_phone"`
	Email          string    `json:"email"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	CRMID          string    `json:"crm_id"`
	MarketingID    string    `json:"mkt_id"`
	CompanyName    string    `json:"company_name"`
	Status         string    `json:"status"`
	RealDate       time.Time `json:"real_date"`
}

// FullName returns the lead's display name.
func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}
