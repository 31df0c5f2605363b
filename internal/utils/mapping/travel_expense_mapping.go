package mapping

import (
	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/SscSPs/workplace_services/internal/models"
)

// ToModelTravelExpense converts a domain TravelExpense to a model TravelExpense
func ToModelTravelExpense(d domain.TravelExpense) models.TravelExpense {
	return models.TravelExpense{
		ID:              d.ID,
		TripDestination: d.TripDestination,
		TripPurpose:     d.TripPurpose,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		ExpenseType:     string(d.ExpenseType),
		Amount:          d.Amount,
		Currency:        d.Currency,
		Description:     ToNullString(d.Description),
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTravelExpense converts a model TravelExpense to a domain TravelExpense
func ToDomainTravelExpense(m models.TravelExpense) domain.TravelExpense {
	return domain.TravelExpense{
		ID:              m.ID,
		TripDestination: m.TripDestination,
		TripPurpose:     m.TripPurpose,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		ExpenseType:     domain.ExpenseType(m.ExpenseType),
		Amount:          m.Amount,
		Currency:        m.Currency,
		Description:     m.Description.String,
		Status:          domain.ExpenseStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTravelExpenseSlice converts a slice of model TravelExpenses to domain TravelExpenses
func ToDomainTravelExpenseSlice(ms []models.TravelExpense) []domain.TravelExpense {
	ds := make([]domain.TravelExpense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTravelExpense(m)
	}
	return ds
}
