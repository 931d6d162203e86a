package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/voyago/booking-system/payments-service/domain"
	"github.com/voyago/booking-system/payments-service/mocks"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

func TestProcessPayment_Execute(t *testing.T) {
	tripID := "550e8400-e29b-41d4-a716-446655440001"
	paymentID := "550e8400-e29b-41d4-a716-446655440004"

	tests := []struct {
		name          string
		command       *ProcessPaymentCommand
		setupMocks    func(*mocks.MockPaymentRepository)
		expectedError string
		terminal      bool
	}{
		{
			name:    "successful charge with default amount",
			command: &ProcessPaymentCommand{TripID: tripID, PaymentID: paymentID},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.TripID == models.ID(tripID) &&
						p.PaymentID == models.ID(paymentID) &&
						p.Amount.Amount == int64(DefaultAmount) &&
						p.Amount.Currency == DefaultCurrency &&
						p.Status == domain.StatusConfirmed
				})).Return(nil).Once()
			},
		},
		{
			name: "explicit amount is honoured",
			command: &ProcessPaymentCommand{
				TripID:    tripID,
				PaymentID: paymentID,
				Amount:    129900,
				Currency:  "EUR",
			},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Amount.Amount == 129900 && p.Amount.Currency == "EUR"
				})).Return(nil).Once()
			},
		},
		{
			name:    "injected payment fault is terminal",
			command: &ProcessPaymentCommand{TripID: tripID, PaymentID: paymentID, Fault: models.FaultPayment},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				// No expectations - fails before touching storage
			},
			expectedError: "failed to process payment",
			terminal:      true,
		},
		{
			name:    "missing payment ID",
			command: &ProcessPaymentCommand{TripID: tripID},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				// No expectations - should fail validation
			},
			expectedError: "trip ID and payment ID are required",
			terminal:      true,
		},
		{
			name:    "repository insert error is transient",
			command: &ProcessPaymentCommand{TripID: tripID, PaymentID: paymentID},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Payment")).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to insert payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockPaymentRepository(t)
			tt.setupMocks(mockRepo)

			useCase := NewProcessPayment(mockRepo)

			result, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Equal(t, tt.terminal, workflow.IsTerminal(err))
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, paymentID, result.PaymentID)
			}
		})
	}
}
