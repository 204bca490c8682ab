package moderated

// Column names of the moderated-responses export. The parser reads rows
// as column-name -> cell mappings keyed by these.
const (
	ColItemName         = "Item_Name"
	ColItemNameAudio    = "Item_Name_Audio_File_Link"
	ColDescription      = "Item_Description_Text"
	ColDescriptionAudio = "Item_Description_Audio_File_Link"
	ColDateCalendar     = "Date_Of_Origin_Calendar"
	ColDateYearsAgo     = "Date_Of_Origin_Years_Ago"
	ColLocationPlace    = "Location_Of_Origin_Place_Name"
	ColLocationGPS      = "Location_Of_Origin_GPS"
	ColImageLink        = "Item_Image_File_Link"
	ColImageSource      = "Image_Source_Link"
	ColImageCredit      = "Image Credit"
	ColNext             = "Next_12"
	ColTags             = "Tags"
	ColSources          = "Sources"
)

// Item is one parsed moderated-responses row. Items are immutable value
// objects owned by the caller; nil pointer fields mean the cell was
// empty or whitespace-only.
type Item struct {
	// Required fields, non-empty after trimming.
	Name        string
	Description string

	// Optional audio links.
	NameAudioLink        *string
	DescriptionAudioLink *string

	// Date of origin: a calendar string or a years-ago count. The sheet
	// convention is one or the other; neither is enforced here.
	DateCalendar *string
	YearsAgo     *int

	// Optional location.
	PlaceName *string
	GPS       *string

	// Optional image metadata.
	ImageLink   *string
	ImageSource *string
	ImageCredit *string

	// Optional free-form metadata.
	Next    *string
	Tags    *string
	Sources *string
}
