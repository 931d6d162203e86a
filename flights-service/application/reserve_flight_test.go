package application

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/voyago/booking-system/flights-service/domain"
	"github.com/voyago/booking-system/flights-service/mocks"
	"github.com/voyago/booking-system/shared/models"
	"github.com/voyago/booking-system/shared/workflow"
)

func TestReserveFlight_Execute(t *testing.T) {
	departure := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	arrival := departure.Add(9 * time.Hour)

	tests := []struct {
		name          string
		command       *ReserveFlightCommand
		setupMocks    func(*mocks.MockFlightRepository)
		expectedError string
		terminal      bool
	}{
		{
			name: "successful reservation",
			command: &ReserveFlightCommand{
				TripID:     "550e8400-e29b-41d4-a716-446655440001",
				DepartCity: "Detroit",
				DepartTime: departure,
				ArriveCity: "Frankfurt",
				ArriveTime: arrival,
			},
			setupMocks: func(repo *mocks.MockFlightRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(r *domain.FlightReservation) bool {
					return r.TripID == "550e8400-e29b-41d4-a716-446655440001" &&
						r.Status == domain.StatusPending &&
						r.Itinerary.DepartCity == "Detroit" &&
						!r.BookingID.IsEmpty()
				})).Return(nil).Once()
			},
		},
		{
			name: "injected reservation fault is terminal",
			command: &ReserveFlightCommand{
				TripID:     "550e8400-e29b-41d4-a716-446655440001",
				DepartCity: "Detroit",
				ArriveCity: "Frankfurt",
				Fault:      models.FaultFlightReservation,
			},
			setupMocks: func(repo *mocks.MockFlightRepository) {
				// No expectations - fails before touching storage
			},
			expectedError: "failed to book the flight",
			terminal:      true,
		},
		{
			name: "unrelated fault does not trip this step",
			command: &ReserveFlightCommand{
				TripID:     "550e8400-e29b-41d4-a716-446655440001",
				DepartCity: "Detroit",
				ArriveCity: "Frankfurt",
				Fault:      models.FaultCarReservation,
			},
			setupMocks: func(repo *mocks.MockFlightRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.FlightReservation")).Return(nil).Once()
			},
		},
		{
			name: "missing trip ID",
			command: &ReserveFlightCommand{
				DepartCity: "Detroit",
				ArriveCity: "Frankfurt",
			},
			setupMocks: func(repo *mocks.MockFlightRepository) {
				// No expectations - should fail validation
			},
			expectedError: "trip ID is required",
			terminal:      true,
		},
		{
			name: "repository insert error is transient",
			command: &ReserveFlightCommand{
				TripID:     "550e8400-e29b-41d4-a716-446655440001",
				DepartCity: "Detroit",
				ArriveCity: "Frankfurt",
			},
			setupMocks: func(repo *mocks.MockFlightRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.FlightReservation")).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to insert flight reservation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockFlightRepository(t)
			tt.setupMocks(mockRepo)

			useCase := NewReserveFlight(mockRepo)

			result, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Equal(t, tt.terminal, workflow.IsTerminal(err))
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.NotEmpty(t, result.BookingID)

				_, err := models.NewID(result.BookingID)
				assert.NoError(t, err)
			}
		})
	}
}
