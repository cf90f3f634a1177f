package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

func TestAdminHandler_Grant(t *testing.T) {
	InitValidator()

	grantBody := func(amount int64) *bytes.Reader {
		body, _ := json.Marshal(GrantRequest{
			Username:     "sprout",
			Platform:     "discord",
			PlatformID:   "12345",
			ResourceType: domain.ResourceMoney,
			Amount:       amount,
		})
		return bytes.NewReader(body)
	}

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockFarmService)
		mockSvc.On("Grant", mock.Anything, "discord", "12345", "sprout", domain.ResourceMoney, int64(500)).
			Return(&domain.FarmStatusResponse{
				AccountID: "acct-1",
				Balances:  domain.ResourceBalance{domain.ResourceMoney: 600},
			}, nil)
		h := NewAdminHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/grant", grantBody(500))
		rec := httptest.NewRecorder()

		h.Grant(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		mockSvc := new(MockFarmService)
		h := NewAdminHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/grant", grantBody(-5))
		rec := httptest.NewRecorder()

		h.Grant(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgAmountMustBePositive)
		mockSvc.AssertNotCalled(t, "Grant")
	})

	t.Run("Amount Exceeds Max", func(t *testing.T) {
		mockSvc := new(MockFarmService)
		h := NewAdminHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/grant", grantBody(MaxGrantAmount+1))
		rec := httptest.NewRecorder()

		h.Grant(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgAmountExceedsMax)
		mockSvc.AssertNotCalled(t, "Grant")
	})
}
