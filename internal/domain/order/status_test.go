package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		order Order
		want  DisplayStatus
	}{
		{
			name:  "unconfirmed order is new",
			order: Order{TotalValue: decimal.NewFromInt(500)},
			want:  StatusNew,
		},
		{
			name: "confirmed with date and value",
			order: Order{
				IsConfirmed:  true,
				TotalValue:   decimal.NewFromInt(500),
				RequiredDate: &date,
			},
			want: StatusConfirmed,
		},
		{
			name: "confirmed without required date is incomplete",
			order: Order{
				IsConfirmed: true,
				TotalValue:  decimal.NewFromInt(500),
			},
			want: StatusIncomplete,
		},
		{
			name: "confirmed with zero value is incomplete",
			order: Order{
				IsConfirmed:  true,
				TotalValue:   decimal.Zero,
				RequiredDate: &date,
			},
			want: StatusIncomplete,
		},
		{
			name: "in production beats confirmed",
			order: Order{
				IsConfirmed:  true,
				InProduction: true,
				TotalValue:   decimal.NewFromInt(500),
				RequiredDate: &date,
			},
			want: StatusInProduction,
		},
		{
			name: "delivered beats in production",
			order: Order{
				IsConfirmed:  true,
				InProduction: true,
				TotalValue:   decimal.NewFromInt(500),
				RequiredDate: &date,
				DeliveredAt:  &date,
			},
			want: StatusDelivered,
		},
		{
			name: "cancelled beats everything",
			order: Order{
				IsConfirmed:  true,
				IsCancelled:  true,
				InProduction: true,
				TotalValue:   decimal.NewFromInt(500),
				RequiredDate: &date,
				DeliveredAt:  &date,
			},
			want: StatusCancelled,
		},
		{
			name: "incomplete data but delivered still shows delivered",
			order: Order{
				IsConfirmed: true,
				TotalValue:  decimal.Zero,
				DeliveredAt: &date,
			},
			want: StatusDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.order))
		})
	}
}
