package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/service"
)

// MemberHandler manages member records and package sales.
type MemberHandler struct {
	members    service.MemberService
	membership service.MembershipService
}

func NewMemberHandler(members service.MemberService, membership service.MembershipService) *MemberHandler {
	return &MemberHandler{members: members, membership: membership}
}

type memberRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	member, err := h.members.CreateMember(r.Context(), req.Name, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.members.GetMember(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// List returns all members, or those matching the optional q parameter.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.SearchMembers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	member, err := h.members.UpdateMember(r.Context(), mux.Vars(r)["id"], req.Name, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

type purchasePackageRequest struct {
	Kind domain.PackageKind     `json:"kind"`
	Tier domain.EligibilityTier `json:"tier"`
}

type purchasePackageResponse struct {
	Member      *domain.Member                `json:"member"`
	Transaction *domain.MembershipTransaction `json:"transaction"`
}

// PurchasePackage sells or tops up a prepaid package for a member.
func (h *MemberHandler) PurchasePackage(w http.ResponseWriter, r *http.Request) {
	var req purchasePackageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Tier != domain.TierPS3 && req.Tier != domain.TierPS4 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tier must be PS3_ONLY or PS4_PS5"})
		return
	}

	member, tx, err := h.membership.PurchasePackage(r.Context(), mux.Vars(r)["id"], req.Kind, req.Tier, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, purchasePackageResponse{Member: member, Transaction: tx})
}
