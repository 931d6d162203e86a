package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/voyago/booking-system/cars-service/mocks"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

func TestCancelCar_Execute(t *testing.T) {
	tripID := "550e8400-e29b-41d4-a716-446655440001"
	bookingID := "550e8400-e29b-41d4-a716-446655440003"

	tests := []struct {
		name          string
		command       *CancelCarCommand
		setupMocks    func(*mocks.MockCarRepository)
		expectedError string
		terminal      bool
	}{
		{
			name:    "successful cancellation",
			command: &CancelCarCommand{TripID: tripID, BookingID: bookingID},
			setupMocks: func(repo *mocks.MockCarRepository) {
				repo.EXPECT().Delete(mock.Anything, models.ID(tripID), models.ID(bookingID)).Return(nil).Once()
			},
		},
		{
			name:    "cancelling an unknown rental succeeds",
			command: &CancelCarCommand{TripID: tripID, BookingID: "550e8400-e29b-41d4-a716-446655440099"},
			setupMocks: func(repo *mocks.MockCarRepository) {
				// Delete is a no-op when the record is already gone
				repo.EXPECT().Delete(mock.Anything, models.ID(tripID), models.ID("550e8400-e29b-41d4-a716-446655440099")).
					Return(nil).Once()
			},
		},
		{
			name:    "repository error is transient",
			command: &CancelCarCommand{TripID: tripID, BookingID: bookingID},
			setupMocks: func(repo *mocks.MockCarRepository) {
				repo.EXPECT().Delete(mock.Anything, models.ID(tripID), models.ID(bookingID)).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to delete car reservation",
		},
		{
			name:    "missing booking ID",
			command: &CancelCarCommand{TripID: tripID},
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

			useCase := NewCancelCar(mockRepo)

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
