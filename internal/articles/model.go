package articles

// Article is one section of an Indian statute, addressed by its section number.
type Article struct {
	ID          string `json:"id" bson:"_id"`
	Section     string `json:"section" bson:"section"`
	Act         string `json:"act" bson:"act"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type CreateRequest struct {
	Section     string `json:"section" validate:"notblank,max=50"`
	Act         string `json:"act" validate:"notblank,max=200"`
	Title       string `json:"title" validate:"notblank,max=300"`
	Description string `json:"description" validate:"notblank,max=10000"`
}

func FixtureArticles() []Article {
	return []Article{
		{
			ID:          "art_10",
			Section:     "10",
			Act:         "Indian Contract Act, 1872",
			Title:       "What agreements are contracts",
			Description: "All agreements are contracts if they are made by the free consent of parties competent to contract, for a lawful consideration and with a lawful object, and are not hereby expressly declared to be void.",
		},
		{
			ID:          "art_13",
			Section:     "13",
			Act:         "Hindu Marriage Act, 1955",
			Title:       "Divorce",
			Description: "Any marriage solemnized under this Act may, on a petition presented by either the husband or the wife, be dissolved by a decree of divorce on the grounds listed in the section, including cruelty and desertion for a continuous period of not less than two years.",
		},
		{
			ID:          "art_138",
			Section:     "138",
			Act:         "Negotiable Instruments Act, 1881",
			Title:       "Dishonour of cheque for insufficiency of funds in the account",
			Description: "Where a cheque drawn by a person for the discharge of a debt or other liability is returned unpaid because the amount in the account is insufficient, that person shall be deemed to have committed an offence punishable with imprisonment or fine or both.",
		},
	}
}
