package handler

import (
	"context"

	"koperasi-portal/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetMemberDashboard returns the member's home screen aggregate
// GET /trpc/getMemberDashboard?input={"memberId":1}
func (h *DashboardHandler) GetMemberDashboard(ctx context.Context, in *GetMemberDashboardInput) (interface{}, error) {
	dashboard, err := h.service.GetMemberDashboard(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}
