package documents

func FixtureTemplates() []Template {
	return []Template{
		{
			ID:            "1",
			Title:         "Last Will and Testament",
			Description:   "Create a comprehensive will to distribute your assets and name guardians for minor children.",
			Category:      "Estate Planning",
			Complexity:    ComplexityIntermediate,
			EstimatedTime: "15-20 minutes",
			Price:         49,
			Rating:        4.8,
			UsageCount:    1247,
			Fields:        []string{"Personal Information", "Assets", "Beneficiaries", "Executor", "Guardianship"},
		},
		{
			ID:            "2",
			Title:         "Power of Attorney",
			Description:   "Grant someone the legal authority to act on your behalf in financial or medical matters.",
			Category:      "Estate Planning",
			Complexity:    ComplexitySimple,
			EstimatedTime: "10-15 minutes",
			Price:         29,
			Rating:        4.9,
			UsageCount:    892,
			Fields:        []string{"Principal Information", "Agent Details", "Powers Granted", "Limitations"},
		},
		{
			ID:            "3",
			Title:         "Employment Contract",
			Description:   "Comprehensive employment agreement covering salary, benefits, and terms of employment.",
			Category:      "Employment",
			Complexity:    ComplexityComplex,
			EstimatedTime: "25-30 minutes",
			Price:         79,
			Rating:        4.7,
			UsageCount:    634,
			Fields:        []string{"Employee Info", "Job Description", "Compensation", "Benefits", "Termination"},
		},
		{
			ID:            "4",
			Title:         "Non-Disclosure Agreement",
			Description:   "Protect confidential information shared between parties in business relationships.",
			Category:      "Business",
			Complexity:    ComplexitySimple,
			EstimatedTime: "8-12 minutes",
			Price:         19,
			Rating:        4.6,
			UsageCount:    1456,
			Fields:        []string{"Parties", "Confidential Information", "Obligations", "Duration"},
		},
		{
			ID:            "5",
			Title:         "Residential Lease Agreement",
			Description:   "Standard rental agreement for residential properties with customizable terms.",
			Category:      "Real Estate",
			Complexity:    ComplexityIntermediate,
			EstimatedTime: "20-25 minutes",
			Price:         39,
			Rating:        4.8,
			UsageCount:    987,
			Fields:        []string{"Property Details", "Tenant Info", "Rent Terms", "Rules", "Security Deposit"},
		},
		{
			ID:            "6",
			Title:         "Divorce Settlement Agreement",
			Description:   "Comprehensive agreement covering asset division, custody, and support arrangements.",
			Category:      "Family Law",
			Complexity:    ComplexityComplex,
			EstimatedTime: "35-45 minutes",
			Price:         99,
			Rating:        4.9,
			UsageCount:    423,
			Fields:        []string{"Parties", "Assets", "Debts", "Child Custody", "Support", "Property Division"},
		},
	}
}

func FixtureSchemas() map[string]Schema {
	return map[string]Schema{
		"1": {
			Title: "Last Will and Testament",
			Sections: []Section{
				{
					ID:          "personal-info",
					Title:       "Personal Information",
					Description: "Basic information about the testator (person making the will)",
					Fields: []FormField{
						{ID: "full-name", Label: "Full Legal Name", Type: FieldText, Required: true, Placeholder: "Enter your full legal name as it appears on official documents"},
						{ID: "address", Label: "Current Address", Type: FieldTextarea, Required: true, Placeholder: "Enter your complete current address"},
						{ID: "date-of-birth", Label: "Date of Birth", Type: FieldDate, Required: true},
						{ID: "marital-status", Label: "Marital Status", Type: FieldSelect, Required: true, Options: []string{"Single", "Married", "Divorced", "Widowed"}},
						{ID: "spouse-name", Label: "Spouse's Name (if applicable)", Type: FieldText, Placeholder: "Enter spouse's full legal name"},
					},
				},
				{
					ID:          "assets",
					Title:       "Assets and Property",
					Description: "List your assets, property, and valuable possessions",
					Fields: []FormField{
						{ID: "real-estate", Label: "Real Estate Properties", Type: FieldTextarea, Placeholder: "List all real estate properties you own (addresses, descriptions)", HelpText: "Include primary residence, vacation homes, rental properties, etc."},
						{ID: "bank-accounts", Label: "Bank Accounts", Type: FieldTextarea, Placeholder: "List bank accounts (institution names, account types)", HelpText: "Include checking, savings, CDs, money market accounts"},
						{ID: "investments", Label: "Investments", Type: FieldTextarea, Placeholder: "List investment accounts, stocks, bonds, retirement accounts"},
						{ID: "personal-property", Label: "Valuable Personal Property", Type: FieldTextarea, Placeholder: "Jewelry, artwork, vehicles, collectibles, etc."},
						{ID: "business-interests", Label: "Business Interests", Type: FieldTextarea, Placeholder: "Ownership in businesses, partnerships, corporations"},
					},
				},
				{
					ID:          "beneficiaries",
					Title:       "Beneficiaries",
					Description: "Specify who will inherit your assets",
					Fields: []FormField{
						{ID: "primary-beneficiaries", Label: "Primary Beneficiaries", Type: FieldTextarea, Required: true, Placeholder: "List primary beneficiaries (name, relationship, percentage/specific bequests)", HelpText: "These are the main people who will inherit your assets"},
						{ID: "contingent-beneficiaries", Label: "Contingent Beneficiaries", Type: FieldTextarea, Placeholder: "List backup beneficiaries in case primary beneficiaries cannot inherit"},
						{ID: "specific-bequests", Label: "Specific Bequests", Type: FieldTextarea, Placeholder: "Specific items or amounts to specific people", HelpText: "e.g., 'My wedding ring to my daughter Sarah'"},
						{ID: "charitable-donations", Label: "Charitable Donations", Type: FieldTextarea, Placeholder: "Any donations to charities or organizations"},
					},
				},
				{
					ID:          "executor",
					Title:       "Executor and Administration",
					Description: "Choose who will manage your estate",
					Fields: []FormField{
						{ID: "executor-name", Label: "Primary Executor", Type: FieldText, Required: true, Placeholder: "Full name of the person who will execute your will", HelpText: "This person will be responsible for carrying out your wishes"},
						{ID: "executor-address", Label: "Executor's Address", Type: FieldTextarea, Required: true, Placeholder: "Complete address of your chosen executor"},
						{ID: "alternate-executor", Label: "Alternate Executor", Type: FieldText, Placeholder: "Backup executor in case the primary cannot serve"},
						{ID: "bond-requirement", Label: "Require Bond for Executor", Type: FieldCheckbox, Placeholder: "Require the executor to post a bond (usually not necessary for trusted family)"},
					},
				},
			},
		},
		"2": {
			Title: "Power of Attorney",
			Sections: []Section{
				{
					ID:          "principal-info",
					Title:       "Principal Information",
					Description: "Information about the person granting the power of attorney",
					Fields: []FormField{
						{ID: "principal-name", Label: "Principal's Full Name", Type: FieldText, Required: true, Placeholder: "Your full legal name"},
						{ID: "principal-address", Label: "Principal's Address", Type: FieldTextarea, Required: true, Placeholder: "Your complete current address"},
					},
				},
			},
		},
	}
}
