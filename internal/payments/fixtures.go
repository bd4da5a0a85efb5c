package payments

func FixturePaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "pm_1", Type: MethodCard, Brand: "visa", Last4: "1234", ExpiryMonth: 12, ExpiryYear: 2026, IsDefault: true},
		{ID: "pm_2", Type: MethodCard, Brand: "mastercard", Last4: "5678", ExpiryMonth: 8, ExpiryYear: 2027},
		{ID: "pm_3", Type: MethodBankAccount, BankName: "Chase Bank", Last4: "9012"},
	}
}

func FixtureTransactions() []Transaction {
	return []Transaction{
		{
			ID:                "txn_001",
			Type:              "escrow",
			Amount:            2500,
			Status:            "completed",
			Description:       "Employment Contract Review - Sarah Johnson",
			Lawyer:            "Sarah Johnson",
			Date:              "2024-01-15",
			EscrowReleaseDate: "2024-01-22",
		},
		{
			ID:          "txn_002",
			Type:        "payment",
			Amount:      150,
			Status:      "completed",
			Description: "Document Generation - NDA Template",
			Lawyer:      "System",
			Date:        "2024-01-12",
		},
		{
			ID:          "txn_003",
			Type:        "escrow",
			Amount:      1800,
			Status:      "pending",
			Description: "Divorce Consultation - Jennifer Martinez",
			Lawyer:      "Jennifer Martinez",
			Date:        "2024-01-10",
		},
	}
}

func FixtureEscrowAccounts() []EscrowAccount {
	return []EscrowAccount{
		{
			ID:          "esc_001",
			LawyerName:  "Jennifer Martinez",
			CaseTitle:   "Divorce Settlement Consultation",
			Amount:      1800,
			Status:      "active",
			CreatedDate: "2024-01-10",
			Milestones: []Milestone{
				{ID: "m1", Description: "Initial consultation and case review", Amount: 600, Completed: true, CompletedDate: "2024-01-11"},
				{ID: "m2", Description: "Document preparation and filing", Amount: 800},
				{ID: "m3", Description: "Final settlement negotiation", Amount: 400},
			},
		},
		{
			ID:          "esc_002",
			LawyerName:  "Robert Williams",
			CaseTitle:   "Criminal Defense Consultation",
			Amount:      3500,
			Status:      "pending_release",
			CreatedDate: "2024-01-05",
			ReleaseDate: "2024-01-20",
			Milestones: []Milestone{
				{ID: "m1", Description: "Case analysis and strategy development", Amount: 1500, Completed: true, CompletedDate: "2024-01-08"},
				{ID: "m2", Description: "Court representation and defense", Amount: 2000, Completed: true, CompletedDate: "2024-01-18"},
			},
		},
	}
}
