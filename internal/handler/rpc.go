package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"koperasi-portal/internal/middleware"
	"koperasi-portal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

type procedureKind int

const (
	query procedureKind = iota
	mutation
)

func (k procedureKind) method() string {
	if k == mutation {
		return fiber.MethodPost
	}
	return fiber.MethodGet
}

type procedure struct {
	kind   procedureKind
	schema *gojsonschema.Schema
	invoke func(c *fiber.Ctx, raw []byte) (interface{}, error)
}

// RPCHandler serves every procedure from one endpoint: queries over GET with an
// ?input= JSON parameter, mutations over POST with a JSON body.
type RPCHandler struct {
	procedures   map[string]procedure
	authRequired bool
	log          *logrus.Logger
}

type Handlers struct {
	Health       *HealthHandler
	Dashboard    *DashboardHandler
	Transaction  *TransactionHandler
	Product      *ProductHandler
	Notification *NotificationHandler
	Auth         *AuthHandler
}

func NewRPCHandler(h Handlers, authRequired bool, log *logrus.Logger) *RPCHandler {
	rpc := &RPCHandler{
		procedures:   make(map[string]procedure),
		authRequired: authRequired,
		log:          log,
	}

	register(rpc, "healthcheck", query, "", h.Health.Healthcheck)
	register(rpc, "getMemberDashboard", query, getMemberDashboardSchema, h.Dashboard.GetMemberDashboard)
	register(rpc, "getTransactions", query, getTransactionsSchema, h.Transaction.GetTransactions)
	register(rpc, "getProducts", query, getProductsSchema, h.Product.GetProducts)
	register(rpc, "getNotifications", query, getNotificationsSchema, h.Notification.GetNotifications)
	register(rpc, "markNotificationRead", mutation, markNotificationReadSchema, h.Notification.MarkNotificationRead)
	register(rpc, "login", mutation, loginSchema, h.Auth.Login)

	return rpc
}

// Mount attaches the RPC endpoint under router
func (h *RPCHandler) Mount(router fiber.Router) {
	router.Get("/trpc/:procedure", h.Dispatch)
	router.Post("/trpc/:procedure", h.Dispatch)
}

func (h *RPCHandler) Dispatch(c *fiber.Ctx) error {
	name := c.Params("procedure")
	p, ok := h.procedures[name]
	if !ok {
		return writeError(c, h.log, name, newRPCError(CodeNotFound, fmt.Sprintf("No procedure found on path %q", name)))
	}

	if c.Method() != p.kind.method() {
		return writeError(c, h.log, name, newRPCError(CodeMethodNotSupported,
			fmt.Sprintf("Procedure %q must be called with %s", name, p.kind.method())))
	}

	var raw []byte
	if p.kind == query {
		raw = []byte(c.Query("input"))
	} else {
		raw = c.Body()
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}

	if p.schema != nil {
		if err := checkSchema(p.schema, raw); err != nil {
			return writeError(c, h.log, name, err)
		}
	}

	data, err := p.invoke(c, raw)
	if err != nil {
		return writeError(c, h.log, name, err)
	}

	return c.JSON(fiber.Map{
		"result": fiber.Map{"data": data},
	})
}

// authorize enforces that a session token may only touch its own member's records
func (h *RPCHandler) authorize(c *fiber.Ctx, in interface{}) error {
	if !h.authRequired {
		return nil
	}
	scoped, ok := in.(memberScoped)
	if !ok {
		return nil
	}
	memberID, ok := middleware.SessionMemberID(c)
	if !ok {
		return newRPCError(CodeUnauthorized, "Missing authorization token")
	}
	if memberID != scoped.ScopeMemberID() {
		return newRPCError(CodeForbidden, "Forbidden: token does not belong to this member")
	}
	return nil
}

func register[In any](h *RPCHandler, name string, kind procedureKind, schema string, fn func(ctx context.Context, in *In) (interface{}, error)) {
	p := procedure{kind: kind}
	if schema != "" {
		p.schema = mustSchema(name, schema)
	}

	p.invoke = func(c *fiber.Ctx, raw []byte) (interface{}, error) {
		in := new(In)
		if err := json.Unmarshal(raw, in); err != nil {
			return nil, newRPCError(CodeBadRequest, "Invalid JSON input")
		}
		if d, ok := any(in).(defaulter); ok {
			d.applyDefaults()
		}
		if errs := validator.ValidateStruct(in); len(errs) > 0 {
			first := errs[0]
			return nil, newRPCError(CodeBadRequest,
				fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag))
		}
		if err := h.authorize(c, in); err != nil {
			return nil, err
		}
		return fn(c.UserContext(), in)
	}

	h.procedures[name] = p
}

func mustSchema(name, schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid input schema for %s: %v", name, err))
	}
	return compiled
}

func checkSchema(schema *gojsonschema.Schema, raw []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return newRPCError(CodeBadRequest, "Invalid JSON input")
	}
	if !res.Valid() {
		first := res.Errors()[0]
		return newRPCError(CodeBadRequest, fmt.Sprintf("Invalid input: %s", first.String()))
	}
	return nil
}
