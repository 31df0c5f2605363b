package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/core/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/platform/cache"
	"github.com/SscSPs/workplace_services/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type TripBookingServiceTestSuite struct {
	suite.Suite
	service portssvc.TripBookingSvcFacade
}

func (suite *TripBookingServiceTestSuite) SetupTest() {
	clock := &tickingClock{next: fixedNow}
	suite.service = services.NewTripBookingService(memory.NewTripBookingRepository(),
		services.WithCache(cache.New(64, 0)),
		services.WithClock(clock.now),
	)
}

func (suite *TripBookingServiceTestSuite) book(departure, ret, to string) *domain.TripBooking {
	b, err := suite.service.CreateTripBooking(context.Background(), dto.CreateTripBookingRequest{
		TripType:      "round-trip",
		FromLocation:  "Berlin",
		ToLocation:    to,
		DepartureDate: departure,
		ReturnDate:    ret,
		Purpose:       "Client workshop",
	}, "")
	suite.Require().NoError(err)
	return b
}

func (suite *TripBookingServiceTestSuite) TestCreate_PersistsPendingBooking() {
	ctx := context.Background()
	created := suite.book("2024-06-10", "", "Madrid")

	suite.Equal(domain.BookingPending, created.Status)
	suite.Nil(created.ReturnDate)

	got, err := suite.service.GetTripBookingByID(ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal("Madrid", got.ToLocation)

	all, err := suite.service.ListTripBookings(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *TripBookingServiceTestSuite) TestCreate_ReturnBeforeDeparture() {
	_, err := suite.service.CreateTripBooking(context.Background(), dto.CreateTripBookingRequest{
		TripType:      "round-trip",
		FromLocation:  "Berlin",
		ToLocation:    "Madrid",
		DepartureDate: "2024-06-10",
		ReturnDate:    "2024-06-09",
		Purpose:       "Client workshop",
	}, "")

	var verrs apperrors.ValidationErrors
	suite.Require().ErrorAs(err, &verrs)
	suite.Contains(verrs, "returnDate")
}

func (suite *TripBookingServiceTestSuite) TestUpcoming_SoonestFirstFromToday() {
	ctx := context.Background()
	suite.book("2024-05-30", "", "Past")
	suite.book("2024-06-20", "", "Later")
	suite.book("2024-05-31", "2024-06-02", "Today")

	got, err := suite.service.ListUpcomingTripBookings(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("Today", got[0].ToLocation)
	suite.Equal("Later", got[1].ToLocation)
}

func (suite *TripBookingServiceTestSuite) TestCalendar_GroupsByDepartureDay() {
	ctx := context.Background()
	suite.book("2024-06-03", "", "Lisbon")
	suite.book("2024-06-03", "", "Porto")
	suite.book("2024-06-15", "", "Faro")
	suite.book("2024-07-01", "", "July")

	days, err := suite.service.TripBookingCalendar(ctx, "2024-06")
	suite.Require().NoError(err)
	suite.Require().Len(days, 2)
	suite.Equal("2024-06-03", days[0].Date.Format(domain.DateLayout))
	suite.Len(days[0].Bookings, 2)
	suite.Equal("Faro", days[1].Bookings[0].ToLocation)

	current, err := suite.service.TripBookingCalendar(ctx, "")
	suite.Require().NoError(err)
	suite.Empty(current)

	past, err := suite.service.TripBookingCalendar(ctx, "2024-04")
	suite.Require().NoError(err)
	suite.Empty(past)

	_, err = suite.service.TripBookingCalendar(ctx, "June")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TripBookingServiceTestSuite) TestUpdate_UnknownID() {
	purpose := "Moved"
	err := suite.service.UpdateTripBooking(context.Background(), "missing", dto.UpdateTripBookingRequest{Purpose: &purpose}, "")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TripBookingServiceTestSuite) TestUpdate_ReturnCheckedAgainstStoredDeparture() {
	ctx := context.Background()
	created := suite.book("2024-06-10", "2024-06-12", "Vienna")
	early := "2024-06-01"

	err := suite.service.UpdateTripBooking(ctx, created.ID, dto.UpdateTripBookingRequest{ReturnDate: &early}, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	later := "2024-06-14"
	suite.Require().NoError(suite.service.UpdateTripBooking(ctx, created.ID, dto.UpdateTripBookingRequest{ReturnDate: &later}, ""))
	got, err := suite.service.GetTripBookingByID(ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(later, got.ReturnDate.Format(domain.DateLayout))
}

func TestTripBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TripBookingServiceTestSuite))
}
