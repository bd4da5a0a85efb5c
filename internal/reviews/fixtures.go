package reviews

func FixtureReviews() []Review {
	return []Review{
		{
			ID:         "rev_1",
			ClientName: "John D.",
			LawyerName: "Sarah Johnson",
			LawyerID:   "lawyer_1",
			Rating:     5,
			Title:      "Exceptional service and expertise",
			Content:    "Sarah handled my employment contract review with incredible attention to detail. She explained every clause clearly and negotiated better terms than I expected. Highly professional and responsive throughout the entire process.",
			CaseType:   "Employment Law",
			Date:       "2024-01-15",
			Helpful:    12,
			Verified:   true,
			Response: &Response{
				Content: "Thank you John! It was a pleasure working with you on your employment contract.",
				Date:    "2024-01-16",
			},
		},
		{
			ID:         "rev_2",
			ClientName: "Maria S.",
			LawyerName: "Jennifer Martinez",
			LawyerID:   "lawyer_2",
			Rating:     5,
			Title:      "Compassionate and skilled family lawyer",
			Content:    "Jennifer guided me through a difficult divorce with empathy and professionalism. She kept me informed at every step and achieved a fair settlement. I couldn't have asked for better representation.",
			CaseType:   "Family Law",
			Date:       "2024-01-12",
			Helpful:    8,
			Verified:   true,
		},
		{
			ID:         "rev_3",
			ClientName: "Robert K.",
			LawyerName: "Robert Williams",
			LawyerID:   "lawyer_3",
			Rating:     4,
			Title:      "Strong criminal defense representation",
			Content:    "Robert successfully defended my case and got the charges reduced significantly. His knowledge of criminal law is impressive and he fought hard for the best outcome.",
			CaseType:   "Criminal Defense",
			Date:       "2024-01-10",
			Helpful:    15,
			Verified:   true,
		},
	}
}

func FixtureLawyerStats() []LawyerStats {
	return []LawyerStats{
		{
			ID:                 "lawyer_1",
			Name:               "Sarah Johnson",
			TotalReviews:       127,
			AverageRating:      4.9,
			RatingDistribution: map[int]int{5: 115, 4: 10, 3: 2, 2: 0, 1: 0},
			ResponseRate:       98,
			RecommendationRate: 96,
		},
		{
			ID:                 "lawyer_2",
			Name:               "Jennifer Martinez",
			TotalReviews:       156,
			AverageRating:      4.8,
			RatingDistribution: map[int]int{5: 135, 4: 18, 3: 3, 2: 0, 1: 0},
			ResponseRate:       95,
			RecommendationRate: 94,
		},
		{
			ID:                 "lawyer_3",
			Name:               "Robert Williams",
			TotalReviews:       201,
			AverageRating:      4.7,
			RatingDistribution: map[int]int{5: 165, 4: 28, 3: 6, 2: 2, 1: 0},
			ResponseRate:       92,
			RecommendationRate: 91,
		},
	}
}
