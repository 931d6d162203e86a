package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/voyago/booking-system/cars-service/domain"
	"github.com/voyago/booking-system/cars-service/mocks"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

func TestConfirmCar_Execute(t *testing.T) {
	tripID := "550e8400-e29b-41d4-a716-446655440001"
	bookingID := "550e8400-e29b-41d4-a716-446655440003"

	tests := []struct {
		name          string
		command       *ConfirmCarCommand
		setupMocks    func(*mocks.MockCarRepository)
		expectedError string
		terminal      bool
	}{
		{
			name:    "successful confirmation",
			command: &ConfirmCarCommand{TripID: tripID, BookingID: bookingID},
			setupMocks: func(repo *mocks.MockCarRepository) {
				repo.EXPECT().Confirm(mock.Anything, models.ID(tripID), models.ID(bookingID)).Return(nil).Once()
			},
		},
		{
			name:    "injected confirmation fault is terminal",
			command: &ConfirmCarCommand{TripID: tripID, BookingID: bookingID, Fault: models.FaultCarConfirmation},
			setupMocks: func(repo *mocks.MockCarRepository) {
				// No expectations - fails before touching storage
			},
			expectedError: "failed to confirm the car rental",
			terminal:      true,
		},
		{
			name:    "confirming a cancelled rental is terminal",
			command: &ConfirmCarCommand{TripID: tripID, BookingID: bookingID},
			setupMocks: func(repo *mocks.MockCarRepository) {
				repo.EXPECT().Confirm(mock.Anything, models.ID(tripID), models.ID(bookingID)).
					Return(domain.ErrReservationNotFound).Once()
			},
			expectedError: "car reservation not found",
			terminal:      true,
		},
		{
			name:    "repository error is transient",
			command: &ConfirmCarCommand{TripID: tripID, BookingID: bookingID},
			setupMocks: func(repo *mocks.MockCarRepository) {
				repo.EXPECT().Confirm(mock.Anything, models.ID(tripID), models.ID(bookingID)).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to confirm car reservation",
		},
		{
			name:    "missing booking ID",
			command: &ConfirmCarCommand{TripID: tripID},
			setupMocks: func(repo *mocks.MockCarRepository) {
				// No expectations - should fail validation
			},
			expectedError: "trip ID and booking ID are required",
			terminal:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockCarRepository(t)
			tt.setupMocks(mockRepo)

			useCase := NewConfirmCar(mockRepo)

			result, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Equal(t, tt.terminal, workflow.IsTerminal(err))
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, bookingID, result.BookingID)
			}
		})
	}
}
