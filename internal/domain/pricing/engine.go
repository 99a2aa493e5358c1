package pricing

// TimeWindowAnytime carries no surcharge; any window missing from the
// config is priced the same way.
const TimeWindowAnytime = "anytime"

// TowelItem is an itemized per-bathroom towel request. When present it
// overrides the default two-towels-one-face-cloth-per-bath assumption.
type TowelItem struct {
	Towels     int `json:"towels"`
	FaceCloths int `json:"face_cloths"`
}

// LinenChoice captures a homeowner's linen selections for one appointment.
type LinenChoice struct {
	Sheets     bool        `json:"sheets"`
	Towels     bool        `json:"towels"`
	TowelItems []TowelItem `json:"towel_items,omitempty"`
}

// Quote computes the cleaning price in cents. It is pure: both the booking
// path and the reconciliation path call it and must agree bit-for-bit given
// identical inputs and config.
func Quote(cfg Config, beds BedCount, baths BathCount, linens LinenChoice, timeWindow string) int64 {
	price := cfg.BasePriceCents

	extraBeds := beds.Int() - 1
	if extraBeds < 0 {
		extraBeds = 0
	}
	extraFullBaths := baths.Whole() - 1
	if extraFullBaths < 0 {
		extraFullBaths = 0
	}

	price += int64(extraBeds)*cfg.ExtraBedBathFeeCents + int64(extraFullBaths)*cfg.ExtraBedBathFeeCents
	if baths.HasHalf() {
		price += cfg.HalfBathFeeCents
	}

	if linens.Sheets {
		// Every bed gets sheets, not just the extras.
		price += int64(beds.Int()) * cfg.Linens.SheetFeePerBedCents
	}

	if linens.Towels {
		if len(linens.TowelItems) > 0 {
			for _, item := range linens.TowelItems {
				price += int64(item.Towels)*cfg.Linens.TowelFeeCents + int64(item.FaceCloths)*cfg.Linens.FaceClothFeeCents
			}
		} else {
			price += int64(baths.Ceil()) * (2*cfg.Linens.TowelFeeCents + cfg.Linens.FaceClothFeeCents)
		}
	}

	price += cfg.TimeWindows[timeWindow]

	return price
}
