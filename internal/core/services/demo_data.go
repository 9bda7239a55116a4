package services

import "github.com/tijarati/tijarati_host/internal/models"

// The demonstration dataset is deterministic: enabling demo mode after
// disabling it reproduces exactly these rows. Partner ids are negative so
// they can never collide with real sequence-assigned ids; transaction ids
// are fixed.
const demoCreatedAt = 1704067200000 // 2024-01-01T00:00:00Z

func demoTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:        "demo-tx-1",
			Type:      models.Sale,
			Item:      "Argan oil 1L",
			Amount:    250,
			Quantity:  1,
			UnitPrice: 250,
			Date:      "2024-01-05",
			Currency:  "MAD",
			CreatedAt: demoCreatedAt,
			IsMock:    true,
		},
		{
			ID:         "demo-tx-2",
			Type:       models.Purchase,
			Item:       "Packaging boxes",
			Amount:     480,
			Quantity:   40,
			UnitPrice:  12,
			Date:       "2024-01-03",
			IsCredit:   true,
			ClientName: "Atlas Supplies",
			PaidAmount: 200,
			Currency:   "MAD",
			CreatedAt:  demoCreatedAt,
			DueDate:    "2024-02-01",
			Installments: []models.Installment{
				{Amount: 200, Date: "2024-01-03", Paid: true},
				{Amount: 280, Date: "2024-02-01", Paid: false},
			},
			IsMock: true,
		},
		{
			ID:        "demo-tx-3",
			Type:      models.Sale,
			Item:      "Honey jars",
			Amount:    360,
			Quantity:  12,
			UnitPrice: 30,
			Date:      "2024-01-02",
			Currency:  "MAD",
			CreatedAt: demoCreatedAt,
			IsMock:    true,
		},
	}
}

func demoPartners() []models.Partner {
	return []models.Partner{
		{
			ID:             -1,
			Name:           "Demo Partner A",
			Percent:        60,
			CreatedAt:      demoCreatedAt,
			InvestedAmount: 5000,
			InvestedDate:   "2024-01-01",
			ProfitSchedule: "monthly",
			Payouts: []models.Payout{
				{Amount: 300, Date: "2024-02-01", Paid: false},
			},
			IsMock: true,
		},
		{
			ID:        -2,
			Name:      "Demo Partner B",
			Percent:   40,
			CreatedAt: demoCreatedAt,
			IsMock:    true,
		},
	}
}
