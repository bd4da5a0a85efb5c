package cases

func FixtureCases() []Case {
	return []Case{
		{
			ID:                 "case_1",
			Title:              "Employment Contract Review",
			LawyerName:         "Sarah Johnson",
			CaseType:           "Employment Law",
			Status:             StatusActive,
			Progress:           75,
			StartDate:          "2024-01-10",
			ExpectedCompletion: "2024-01-25",
			TotalCost:          2500,
			PaidAmount:         1875,
			NextMilestone:      "Final contract review and signing",
			Priority:           "high",
			Updates: []Update{
				{
					ID:          "update_1",
					Type:        UpdateMilestone,
					Title:       "Initial Contract Analysis Completed",
					Description: "Reviewed all contract terms and identified key areas for negotiation",
					Date:        "2024-01-15",
					Status:      "completed",
				},
				{
					ID:          "update_2",
					Type:        UpdateDocument,
					Title:       "Negotiation Points Document",
					Description: "Prepared detailed document outlining recommended changes",
					Date:        "2024-01-17",
					Status:      "completed",
					Attachments: []string{"negotiation_points.pdf"},
				},
				{
					ID:          "update_3",
					Type:        UpdateCommunication,
					Title:       "Client Meeting Scheduled",
					Description: "Video call scheduled to discuss negotiation strategy",
					Date:        "2024-01-20",
					Status:      "upcoming",
				},
			},
		},
		{
			ID:                 "case_2",
			Title:              "Divorce Settlement",
			LawyerName:         "Jennifer Martinez",
			CaseType:           "Family Law",
			Status:             StatusActive,
			Progress:           45,
			StartDate:          "2024-01-05",
			ExpectedCompletion: "2024-03-15",
			TotalCost:          5000,
			PaidAmount:         2250,
			NextMilestone:      "Asset valuation and division proposal",
			Priority:           "medium",
			Updates: []Update{
				{
					ID:          "update_4",
					Type:        UpdateCourtDate,
					Title:       "Mediation Session Scheduled",
					Description: "Court-ordered mediation session with opposing party",
					Date:        "2024-01-25",
					Status:      "upcoming",
				},
			},
		},
		{
			ID:                 "case_3",
			Title:              "Criminal Defense Consultation",
			LawyerName:         "Robert Williams",
			CaseType:           "Criminal Defense",
			Status:             StatusCompleted,
			Progress:           100,
			StartDate:          "2023-12-15",
			ExpectedCompletion: "2024-01-18",
			TotalCost:          3500,
			PaidAmount:         3500,
			NextMilestone:      "Case closed - charges dismissed",
			Priority:           "high",
			Updates: []Update{
				{
					ID:          "update_5",
					Type:        UpdateMilestone,
					Title:       "Case Successfully Resolved",
					Description: "All charges dismissed due to insufficient evidence",
					Date:        "2024-01-18",
					Status:      "completed",
				},
			},
		},
	}
}
