package dto

import (
	"testing"

	"github.com/LENAX/ppm/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestApplicantRequest_IsActive(t *testing.T) {
	inactive := model.Applicant{ID: 2, FirstName: "Bob", IsActive: false}
	no := false
	yes := true

	tests := []struct {
		name       string
		isActive   *bool
		wantCreate bool
		wantPatch  bool
	}{
		{"省略时创建为true，更新保留原值", nil, true, false},
		{"显式false", &no, false, false},
		{"显式true", &yes, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ApplicantRequest{FirstName: "Bob", LastName: "Smith", DoB: "1988-11-22", IsActive: tt.isActive}
			assert.Equal(t, tt.wantCreate, req.ToModel().IsActive)
			assert.Equal(t, tt.wantPatch, req.Patch(inactive).IsActive)
		})
	}
}
