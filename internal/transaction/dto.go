package transaction

import "encoding/json"

type createDTO struct {
	ClientID              uint            `json:"clientId"`
	Type                  *uint           `json:"type"`
	Title                 string          `json:"title"`
	Priority              string          `json:"priority"`
	Description           string          `json:"description"`
	Category              string          `json:"category"`
	ProjectClassification string          `json:"projectClassification"`
	Status                string          `json:"status"`
	StatusColor           string          `json:"statusColor"`
	Location              string          `json:"location"`
	DeedNumber            string          `json:"deedNumber"`
	Progress              float64         `json:"progress"`
	Fees                  json.RawMessage `json:"fees"`
	CostDetails           json.RawMessage `json:"costDetails"`
}

type updateDTO struct {
	Type                  *uint           `json:"type"`
	TransactionTypeID     *uint           `json:"transactionTypeId"`
	Title                 *string         `json:"title"`
	Priority              *string         `json:"priority"`
	Description           *string         `json:"description"`
	Category              *string         `json:"category"`
	ProjectClassification *string         `json:"projectClassification"`
	Status                *string         `json:"status"`
	StatusColor           *string         `json:"statusColor"`
	Location              *string         `json:"location"`
	DeedNumber            *string         `json:"deedNumber"`
	Progress              *float64        `json:"progress"`
	CostDetails           json.RawMessage `json:"costDetails"`
}

type staffDTO struct {
	Staff []struct {
		EmployeeID uint   `json:"employeeId"`
		Role       string `json:"role"`
	} `json:"staff"`
}
