package lawyers

func FixtureLawyers() []Lawyer {
	return []Lawyer{
		{
			ID:             "1",
			Name:           "Sarah Johnson",
			Specialty:      []string{"Personal Injury", "Medical Malpractice"},
			Rating:         4.9,
			ReviewCount:    127,
			Experience:     15,
			HourlyRate:     350,
			Location:       "New York, NY",
			Bio:            "Experienced personal injury attorney with a track record of securing substantial settlements for clients. Specializes in medical malpractice and auto accident cases.",
			Education:      []string{"Harvard Law School (JD)", "Columbia University (BA)"},
			Certifications: []string{"Board Certified Personal Injury Trial Law", "Medical Malpractice Specialist"},
			Languages:      []string{"English", "Spanish"},
			Availability:   AvailabilityAvailable,
			CaseTypes:      []string{"Auto Accidents", "Medical Malpractice", "Slip and Fall", "Product Liability"},
			SuccessRate:    94,
		},
		{
			ID:             "2",
			Name:           "Michael Chen",
			Specialty:      []string{"Personal Injury", "Auto Accidents"},
			Rating:         4.8,
			ReviewCount:    89,
			Experience:     12,
			HourlyRate:     300,
			Location:       "Los Angeles, CA",
			Bio:            "Dedicated personal injury lawyer focusing on auto accidents and workplace injuries. Known for aggressive representation and client advocacy.",
			Education:      []string{"UCLA School of Law (JD)", "UC Berkeley (BS)"},
			Certifications: []string{"Personal Injury Law Specialist", "Trial Advocacy Certification"},
			Languages:      []string{"English", "Mandarin", "Cantonese"},
			Availability:   AvailabilityAvailable,
			CaseTypes:      []string{"Auto Accidents", "Motorcycle Accidents", "Workplace Injuries", "Wrongful Death"},
			SuccessRate:    91,
		},
		{
			ID:             "3",
			Name:           "Jennifer Martinez",
			Specialty:      []string{"Family Law", "Divorce"},
			Rating:         4.9,
			ReviewCount:    156,
			Experience:     18,
			HourlyRate:     400,
			Location:       "Chicago, IL",
			Bio:            "Compassionate family law attorney helping clients navigate divorce, custody, and domestic relations matters with dignity and respect.",
			Education:      []string{"Northwestern Law School (JD)", "University of Illinois (BA)"},
			Certifications: []string{"Family Law Specialist", "Collaborative Divorce Certified"},
			Languages:      []string{"English", "Spanish"},
			Availability:   AvailabilityBusy,
			CaseTypes:      []string{"Divorce", "Child Custody", "Child Support", "Domestic Violence", "Adoption"},
			SuccessRate:    96,
		},
		{
			ID:             "4",
			Name:           "David Thompson",
			Specialty:      []string{"Family Law", "Mediation"},
			Rating:         4.7,
			ReviewCount:    73,
			Experience:     10,
			HourlyRate:     275,
			Location:       "Houston, TX",
			Bio:            "Family law attorney and certified mediator committed to resolving family disputes through collaborative and mediation processes.",
			Education:      []string{"University of Texas Law School (JD)", "Texas A&M University (BA)"},
			Certifications: []string{"Certified Family Mediator", "Collaborative Law Trained"},
			Languages:      []string{"English"},
			Availability:   AvailabilityAvailable,
			CaseTypes:      []string{"Divorce Mediation", "Child Custody", "Prenuptial Agreements", "Property Division"},
			SuccessRate:    88,
		},
		{
			ID:             "5",
			Name:           "Robert Williams",
			Specialty:      []string{"Criminal Defense", "DUI"},
			Rating:         4.8,
			ReviewCount:    201,
			Experience:     20,
			HourlyRate:     450,
			Location:       "Phoenix, AZ",
			Bio:            "Veteran criminal defense attorney with extensive trial experience. Specializes in DUI defense and serious felony cases.",
			Education:      []string{"Arizona State Law School (JD)", "Arizona State University (BA)"},
			Certifications: []string{"Board Certified Criminal Law Specialist", "DUI Defense Specialist"},
			Languages:      []string{"English", "Spanish"},
			Availability:   AvailabilityAvailable,
			CaseTypes:      []string{"DUI/DWI", "Drug Crimes", "Assault", "Theft", "White Collar Crime"},
			SuccessRate:    92,
		},
		{
			ID:             "6",
			Name:           "Lisa Anderson",
			Specialty:      []string{"Criminal Defense", "White Collar Crime"},
			Rating:         4.9,
			ReviewCount:    94,
			Experience:     14,
			HourlyRate:     500,
			Location:       "Philadelphia, PA",
			Bio:            "Elite white collar criminal defense attorney representing executives and professionals in complex federal investigations and prosecutions.",
			Education:      []string{"University of Pennsylvania Law School (JD)", "Wharton School (MBA)"},
			Certifications: []string{"White Collar Crime Defense Specialist", "Federal Court Certified"},
			Languages:      []string{"English", "French"},
			Availability:   AvailabilityBusy,
			CaseTypes:      []string{"White Collar Crime", "Federal Investigations", "Securities Fraud", "Tax Evasion"},
			SuccessRate:    95,
		},
		{
			ID:             "7",
			Name:           "Amanda Foster",
			Specialty:      []string{"Business Law", "Contracts"},
			Rating:         4.8,
			ReviewCount:    112,
			Experience:     16,
			HourlyRate:     375,
			Location:       "San Antonio, TX",
			Bio:            "Business law attorney helping startups and established companies with contracts, corporate formation, and commercial transactions.",
			Education:      []string{"Stanford Law School (JD)", "Stanford University (BS)"},
			Certifications: []string{"Business Law Specialist", "Corporate Governance Certified"},
			Languages:      []string{"English", "Spanish"},
			Availability:   AvailabilityAvailable,
			CaseTypes:      []string{"Contract Disputes", "Business Formation", "Mergers & Acquisitions", "Employment Law"},
			SuccessRate:    93,
		},
		{
			ID:             "8",
			Name:           "James Wilson",
			Specialty:      []string{"Employment Law", "HR Compliance"},
			Rating:         4.7,
			ReviewCount:    67,
			Experience:     11,
			HourlyRate:     325,
			Location:       "San Diego, CA",
			Bio:            "Employment law attorney representing both employers and employees in workplace disputes, discrimination cases, and HR compliance matters.",
			Education:      []string{"UC San Diego Law School (JD)", "UCSD (BA)"},
			Certifications: []string{"Employment Law Specialist", "HR Compliance Certified"},
			Languages:      []string{"English"},
			Availability:   AvailabilityAvailable,
			CaseTypes:      []string{"Workplace Discrimination", "Wrongful Termination", "Wage & Hour Disputes", "HR Compliance"},
			SuccessRate:    89,
		},
	}
}

func FixtureReviews() []ProfileReview {
	return []ProfileReview{
		{
			ID:         "1",
			LawyerID:   "1",
			ClientName: "John D.",
			Rating:     5,
			Comment:    "Sarah was exceptional in handling my medical malpractice case. She was thorough, professional, and kept me informed throughout the entire process. Highly recommend!",
			Date:       "2024-01-15",
			CaseType:   "Medical Malpractice",
		},
		{
			ID:         "2",
			LawyerID:   "1",
			ClientName: "Maria S.",
			Rating:     5,
			Comment:    "Outstanding attorney! Sarah secured a great settlement for my car accident case. Her attention to detail and dedication to her clients is remarkable.",
			Date:       "2024-01-08",
			CaseType:   "Auto Accident",
		},
		{
			ID:         "3",
			LawyerID:   "2",
			ClientName: "Robert K.",
			Rating:     5,
			Comment:    "Michael fought hard for my case and got me the compensation I deserved. Very knowledgeable and responsive to all my questions.",
			Date:       "2024-01-12",
			CaseType:   "Personal Injury",
		},
	}
}
