package chat

import "strings"

type Recommendation struct {
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Rating     float64 `json:"rating"`
	Experience string  `json:"experience"`
	HourlyRate string  `json:"hourlyRate"`
}

type Analysis struct {
	Response        string           `json:"response"`
	Category        string           `json:"legalCategory"`
	Recommendations []Recommendation `json:"recommendations"`
}

type Rule struct {
	Category        string           `json:"category"`
	Keywords        []string         `json:"keywords"`
	Response        string           `json:"-"`
	Recommendations []Recommendation `json:"-"`
}

const GeneralCategory = "General Legal Consultation"

// Rules are checked in order; the first rule with a keyword present wins.
var Rules = []Rule{
	{
		Category: "Personal Injury Law",
		Keywords: []string{"accident", "injury", "hurt", "medical malpractice"},
		Response: "Based on your description, this appears to be a personal injury case. Personal injury law covers accidents, medical malpractice, and situations where you've been harmed due to someone else's negligence. I recommend consulting with a personal injury advocate who can evaluate your case for potential compensation including medical expenses, lost wages, and pain and suffering.",
		Recommendations: []Recommendation{
			{Name: "Ravi Kumar", Specialty: "Personal Injury & Medical Negligence", Rating: 4.9, Experience: "15+ years experience", HourlyRate: "₹2,500/hour"},
			{Name: "Anjali Sharma", Specialty: "Accident & Compensation Claims", Rating: 4.8, Experience: "12+ years experience", HourlyRate: "₹2,000/hour"},
		},
	},
	{
		Category: "Family Law",
		Keywords: []string{"divorce", "custody", "marriage", "child support"},
		Response: "This sounds like a family law matter. Family law encompasses divorce, child custody, child support, alimony, and other domestic relations issues. These cases often involve complex emotional and financial considerations. I recommend working with a family law advocate who can guide you through the legal process while protecting your interests and those of any children involved.",
		Recommendations: []Recommendation{
			{Name: "Neha Verma", Specialty: "Divorce & Child Custody", Rating: 4.9, Experience: "18+ years experience", HourlyRate: "₹3,000/hour"},
			{Name: "Arjun Mehta", Specialty: "Family Law & Mediation", Rating: 4.7, Experience: "10+ years experience", HourlyRate: "₹2,200/hour"},
		},
	},
	{
		Category: "Criminal Defense",
		Keywords: []string{"arrest", "criminal", "charge", "police"},
		Response: "This appears to be a criminal law matter. If you're facing criminal charges or have been arrested, it's crucial to exercise your right to remain silent and contact a criminal defense advocate immediately. Criminal cases can have serious consequences including fines, probation, or imprisonment. A skilled criminal defense lawyer can protect your rights and build the strongest possible defense.",
		Recommendations: []Recommendation{
			{Name: "Suresh Nair", Specialty: "Criminal Defense & Bail Matters", Rating: 4.8, Experience: "20+ years experience", HourlyRate: "₹3,500/hour"},
			{Name: "Priya Iyer", Specialty: "White Collar Crime & Cyber Law", Rating: 4.9, Experience: "14+ years experience", HourlyRate: "₹3,800/hour"},
		},
	},
	{
		Category: "Business & Employment Law",
		Keywords: []string{"business", "contract", "company", "employment"},
		Response: "This seems to be a business or employment law issue. Business law covers contracts, corporate formation, employment disputes, intellectual property, and commercial transactions. Whether you're starting a business, dealing with employment issues, or facing contract disputes, a business advocate can help protect your interests and ensure compliance with applicable laws.",
		Recommendations: []Recommendation{
			{Name: "Manish Gupta", Specialty: "Business Law & Contracts", Rating: 4.8, Experience: "16+ years experience", HourlyRate: "₹2,800/hour"},
			{Name: "Kavita Desai", Specialty: "Employment Law & HR Compliance", Rating: 4.7, Experience: "11+ years experience", HourlyRate: "₹2,400/hour"},
		},
	},
	{
		Category: "Real Estate Law",
		Keywords: []string{"property", "real estate", "landlord", "tenant"},
		Response: "This appears to be a real estate law matter. Real estate law covers property transactions, landlord-tenant disputes, property development, zoning issues, and real estate contracts. Whether you're buying, selling, or dealing with property disputes, a real estate advocate can help navigate the complex legal requirements and protect your property interests.",
		Recommendations: []Recommendation{
			{Name: "Vikram Singh", Specialty: "Property Transactions & Disputes", Rating: 4.9, Experience: "19+ years experience", HourlyRate: "₹3,000/hour"},
			{Name: "Shalini Reddy", Specialty: "Commercial Real Estate Law", Rating: 4.6, Experience: "13+ years experience", HourlyRate: "₹3,200/hour"},
		},
	},
}

var generalAnalysis = Analysis{
	Category: GeneralCategory,
	Response: "Thank you for sharing your legal concern. To provide you with the most accurate guidance and lawyer recommendations, could you please provide more specific details about your situation? For example, what type of legal issue are you facing, when did it occur, and what outcome are you hoping to achieve? This will help me better understand your case and connect you with the right legal specialist.",
	Recommendations: []Recommendation{
		{Name: "Rahul Joshi", Specialty: "General Practice & Consultation", Rating: 4.7, Experience: "12+ years experience", HourlyRate: "₹1,800/hour"},
	},
}

// Classify matches keywords as plain substrings of the lower-cased message,
// so "charger" counts as "charge".
func Classify(message string) Analysis {
	lower := strings.ToLower(message)
	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return Analysis{
					Category:        rule.Category,
					Response:        rule.Response,
					Recommendations: append([]Recommendation(nil), rule.Recommendations...),
				}
			}
		}
	}
	general := generalAnalysis
	general.Recommendations = append([]Recommendation(nil), generalAnalysis.Recommendations...)
	return general
}
