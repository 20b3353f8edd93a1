package handler

import (
	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"
)

// memberScoped inputs carry the member whose records are being read or changed
type memberScoped interface {
	ScopeMemberID() int
}

type defaulter interface {
	applyDefaults()
}

type EmptyInput struct{}

type GetMemberDashboardInput struct {
	MemberID int `json:"memberId" validate:"required,gt=0"`
}

func (in *GetMemberDashboardInput) ScopeMemberID() int { return in.MemberID }

// PageInput holds the optional limit/offset pair shared by list procedures
type PageInput struct {
	Limit  *int `json:"limit" validate:"required,min=1,max=100"`
	Offset *int `json:"offset" validate:"required,min=0"`
}

func (p *PageInput) applyDefaults() {
	if p.Limit == nil {
		limit := repository.DefaultPageLimit
		p.Limit = &limit
	}
	if p.Offset == nil {
		offset := 0
		p.Offset = &offset
	}
}

func (p *PageInput) page() repository.Page {
	return repository.Page{Limit: *p.Limit, Offset: *p.Offset}
}

type GetTransactionsInput struct {
	MemberID int `json:"memberId" validate:"required,gt=0"`
	PageInput
}

func (in *GetTransactionsInput) ScopeMemberID() int { return in.MemberID }

type GetProductsInput struct {
	Status *model.ProductStatus `json:"status" validate:"omitempty,enum"`
	PageInput
}

type GetNotificationsInput struct {
	MemberID int `json:"memberId" validate:"required,gt=0"`
	PageInput
}

func (in *GetNotificationsInput) ScopeMemberID() int { return in.MemberID }

type MarkNotificationReadInput struct {
	NotificationID int `json:"notificationId" validate:"required,gt=0"`
	MemberID       int `json:"memberId" validate:"required,gt=0"`
}

func (in *MarkNotificationReadInput) ScopeMemberID() int { return in.MemberID }

type LoginInput struct {
	MemberNumber string `json:"memberNumber" validate:"required,max=32"`
	Pin          string `json:"pin" validate:"required,min=4,max=12,numeric"`
}

// JSON Schemas checked against the raw input before decoding
const (
	memberIDSchema = `{"type": "integer", "minimum": 1}`
	limitSchema    = `{"type": "integer", "minimum": 1, "maximum": 100}`
	offsetSchema   = `{"type": "integer", "minimum": 0}`

	getMemberDashboardSchema = `{
		"type": "object",
		"properties": {"memberId": ` + memberIDSchema + `},
		"required": ["memberId"],
		"additionalProperties": false
	}`

	getTransactionsSchema = `{
		"type": "object",
		"properties": {
			"memberId": ` + memberIDSchema + `,
			"limit": ` + limitSchema + `,
			"offset": ` + offsetSchema + `
		},
		"required": ["memberId"],
		"additionalProperties": false
	}`

	getProductsSchema = `{
		"type": "object",
		"properties": {
			"limit": ` + limitSchema + `,
			"offset": ` + offsetSchema + `,
			"status": {"type": "string", "enum": ["promo", "baru", "regular"]}
		},
		"additionalProperties": false
	}`

	getNotificationsSchema = getTransactionsSchema

	markNotificationReadSchema = `{
		"type": "object",
		"properties": {
			"notificationId": ` + memberIDSchema + `,
			"memberId": ` + memberIDSchema + `
		},
		"required": ["notificationId", "memberId"],
		"additionalProperties": false
	}`

	loginSchema = `{
		"type": "object",
		"properties": {
			"memberNumber": {"type": "string", "minLength": 1},
			"pin": {"type": "string", "minLength": 1}
		},
		"required": ["memberNumber", "pin"],
		"additionalProperties": false
	}`
)
