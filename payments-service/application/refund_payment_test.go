package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/voyago/booking-system/payments-service/mocks"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

func TestRefundPayment_Execute(t *testing.T) {
	tripID := "550e8400-e29b-41d4-a716-446655440001"
	paymentID := "550e8400-e29b-41d4-a716-446655440004"

	tests := []struct {
		name          string
		command       *RefundPaymentCommand
		setupMocks    func(*mocks.MockPaymentRepository)
		expectedError string
		terminal      bool
	}{
		{
			name:    "successful refund",
			command: &RefundPaymentCommand{TripID: tripID, PaymentID: paymentID},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Delete(mock.Anything, models.ID(tripID), models.ID(paymentID)).Return(nil).Once()
			},
		},
		{
			name:    "refunding an unprocessed payment succeeds",
			command: &RefundPaymentCommand{TripID: tripID, PaymentID: "550e8400-e29b-41d4-a716-446655440099"},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				// Delete is a no-op when the record is already gone
				repo.EXPECT().Delete(mock.Anything, models.ID(tripID), models.ID("550e8400-e29b-41d4-a716-446655440099")).
					Return(nil).Once()
			},
		},
		{
			name:    "repository error is transient",
			command: &RefundPaymentCommand{TripID: tripID, PaymentID: paymentID},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				repo.EXPECT().Delete(mock.Anything, models.ID(tripID), models.ID(paymentID)).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to delete payment",
		},
		{
			name:    "missing payment ID",
			command: &RefundPaymentCommand{TripID: tripID},
			setupMocks: func(repo *mocks.MockPaymentRepository) {
				// No expectations - should fail validation
			},
			expectedError: "trip ID and payment ID are required",
			terminal:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockPaymentRepository(t)
			tt.setupMocks(mockRepo)

			useCase := NewRefundPayment(mockRepo)

			result, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Equal(t, tt.terminal, workflow.IsTerminal(err))
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
			}
		})
	}
}
