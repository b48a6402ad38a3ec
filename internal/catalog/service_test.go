package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
)

func TestService_CreateCostCenter(t *testing.T) {
	type args struct {
		name string
		code string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *catalog.MockRepository)
		want      currency.Code
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success upper-cases code",
			args: args{name: "Montevideo", code: "uyu"},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateCostCenter(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *catalog.CostCenter) error {
						c.ID = uuid.New()
						return nil
					})
			},
			want: currency.UYU,
		},
		{
			name:    "InvalidCode",
			args:    args{name: "Somewhere", code: "REAL"},
			wantErr: catalog.ErrInvalid,
		},
		{
			name:    "MissingName",
			args:    args{name: "  ", code: "BRL"},
			wantErr: catalog.ErrInvalid,
		},
		{
			name: "RepoError",
			args: args{name: "Lima", code: "PEN"},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().CreateCostCenter(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := catalog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := catalog.NewService(repo)
			got, err := svc.CreateCostCenter(context.Background(), tt.args.name, tt.args.code)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, catalog.ErrInvalid) {
					assert.ErrorIs(t, err, catalog.ErrInvalid)
				}
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Currency)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_CreateEquipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateEquipment(gomock.Any(), &catalog.Equipment{Fleet: "FG-7", Model: "SB-210", Brand: "Thermo King", Year: 2020}).
		Return(nil)

	svc := catalog.NewService(repo)

	got, err := svc.CreateEquipment(context.Background(), catalog.EquipmentParams{
		Fleet: " FG-7 ", Model: "SB-210", Brand: "Thermo King", Year: 2020,
	})
	require.NoError(t, err)
	assert.Equal(t, "FG-7", got.Fleet)

	_, err = svc.CreateEquipment(context.Background(), catalog.EquipmentParams{})
	assert.ErrorIs(t, err, catalog.ErrInvalid)
}
