package validator

import (
	"testing"

	"github.com/khizerinam08/deal-checker/internal/models"
)

func TestValidateDeal(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		deal    models.Deal
		wantErr bool
	}{
		{
			name: "valid deal",
			deal: models.Deal{
				Name:       "Epic Medium Deal",
				PricePKR:   1250,
				ProductURL: "https://www.dominos.com.pk/menu#combo_EpicMediumDeal_224",
				Source:     "Dominos PK",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			deal: models.Deal{
				PricePKR: 1250,
				Source:   "Dominos PK",
			},
			wantErr: true,
		},
		{
			name: "zero price",
			deal: models.Deal{
				Name:   "Dip Sauce",
				Source: "Dominos PK",
			},
			wantErr: true,
		},
		{
			name: "malformed product url",
			deal: models.Deal{
				Name:       "Epic Medium Deal",
				PricePKR:   1250,
				ProductURL: "not-a-url",
				Source:     "Dominos PK",
			},
			wantErr: true,
		},
		{
			name: "empty optional urls allowed",
			deal: models.Deal{
				Name:     "Epic Medium Deal",
				PricePKR: 1250,
				Source:   "Dominos PK",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.deal)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
