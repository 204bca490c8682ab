package moderated

// IngestParams shapes an Item into the flat named-parameter map accepted
// by the downstream storage API's insert function. One parameter per
// field, plus the fixed placeholders the API expects.
//
// Media storage keys are nil placeholders: files are uploaded by a
// separate step that fills them in. This package only shapes the record;
// it never performs the upload.
func IngestParams(item Item) map[string]any {
	return map[string]any{
		// Required.
		"p_item_name":             item.Name,
		"p_item_description_text": item.Description,

		// Fixed defaults.
		"p_default_language": "en",
		"p_created_by":       nil,

		// Location.
		"p_location_name": deref(item.PlaceName),
		"p_location_gps":  deref(item.GPS),
		"p_loc_type":      "country",

		// Date of origin.
		"p_date_calendar": deref(item.DateCalendar),
		"p_years_ago":     derefInt(item.YearsAgo),

		// Media storage keys, filled by the upload step.
		"p_name_audio_s3_key":        nil,
		"p_description_audio_s3_key": nil,
		"p_image_s3_key":             nil,

		// Metadata.
		"p_tags":         deref(item.Tags),
		"p_sources":      deref(item.Sources),
		"p_image_credit": deref(item.ImageCredit),

		// Rows come from the moderated sheet, so they arrive approved.
		"p_review_status": "approved",
	}
}

// deref converts *string to any, mapping nil pointers to nil values so
// absent fields serialize as SQL/JSON null rather than "".
func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func derefInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
