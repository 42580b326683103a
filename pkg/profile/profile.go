// Package profile describes the per-location rendering rules: time blocks,
// floor buckets, template assets and the layout parameters of every artifact.
package profile

import (
	"path/filepath"
	"strings"
	"time"

	"autosigns/pkg/layout"
	"autosigns/pkg/schedule"
)

// Record fields a column can display.
const (
	FieldStart      = "start"
	FieldEnd        = "end"
	FieldSection    = "section"
	FieldTitle      = "title"
	FieldInstructor = "instructor"
	FieldRoom       = "room"
	// FieldRoomNumber is the room with the profile's RoomPrefix stripped.
	FieldRoomNumber = "room_number"
)

// Scaling laws a slide deck can use for its body font.
const (
	ScalingDensity = "density"
	ScalingWidth   = "width"
)

// Set is the collection of known locations plus the report literals shared by
// all of them.
type Set struct {
	FinalApproval string            `yaml:"final_approval" validate:"required"`
	TBASentinel   string            `yaml:"tba_sentinel" validate:"required"`
	TBAToken      string            `yaml:"tba_token" validate:"required"`
	Profiles      []LocationProfile `yaml:"profiles" validate:"required,min=1,dive"`
}

// LocationProfile holds everything that differs between locations.
type LocationProfile struct {
	Name          string                 `yaml:"name" validate:"required"`
	DisplayName   string                 `yaml:"display_name"`
	BuildingToken string                 `yaml:"building_token" validate:"required"`
	Building      string                 `yaml:"building,omitempty"`
	Title         string                 `yaml:"title" validate:"required"`
	TimeZone      string                 `yaml:"time_zone" validate:"required"`
	RoomPrefix    string                 `yaml:"room_prefix,omitempty"`
	Blocks        []schedule.TimeBlock   `yaml:"blocks" validate:"required,min=1,dive"`
	Floors        []schedule.FloorBucket `yaml:"floors,omitempty" validate:"dive"`
	Signage       SignageLayout          `yaml:"signage"`
	Workbook      WorkbookLayout         `yaml:"workbook"`
	Slides        SlideLayout            `yaml:"slides"`
}

// SignageLayout configures the per-room classroom signs.
type SignageLayout struct {
	Template       string        `yaml:"template" validate:"required"`
	Landscape      bool          `yaml:"landscape"`
	PageWidthIn    float64       `yaml:"page_width_in" validate:"gt=0"`
	PageHeightIn   float64       `yaml:"page_height_in" validate:"gt=0"`
	MarginIn       float64       `yaml:"margin_in" validate:"gte=0"`
	FontFamily     string        `yaml:"font_family" validate:"required"`
	Bold           bool          `yaml:"bold"`
	BaseFontPt     float64       `yaml:"base_font_pt" validate:"gt=0"`
	SpaceAfterPt   float64       `yaml:"space_after_pt" validate:"gte=0"`
	Headings       []SignHeading `yaml:"headings" validate:"required,min=1,dive"`
	TableHeader    []string      `yaml:"table_header,omitempty" validate:"omitempty,len=2"`
	TimeSeparator  string        `yaml:"time_separator" validate:"required"`
	ColumnWidthsIn []float64     `yaml:"column_widths_in" validate:"len=2,dive,gt=0"`
	TableFontPt    float64       `yaml:"table_font_pt" validate:"gt=0"`
	TableAlign     string        `yaml:"table_align" validate:"oneof=left center right"`
	RoomLabel      string        `yaml:"room_label,omitempty"`

	// KeepTemplateBody writes the signs after whatever the template body
	// already holds instead of replacing it.
	KeepTemplateBody bool `yaml:"keep_template_body"`
	// TitleBreak ends every class title cell with a line break.
	TitleBreak bool `yaml:"title_break"`
}

// SignHeading is one heading paragraph printed above a room's table.
// Text may use {date}, {weekday} and {room}.
type SignHeading struct {
	Text            string  `yaml:"text" validate:"required"`
	SizePt          float64 `yaml:"size_pt" validate:"gt=0"`
	Bold            bool    `yaml:"bold"`
	Align           string  `yaml:"align" validate:"oneof=left center right"`
	TrailingBreakPt float64 `yaml:"trailing_break_pt,omitempty" validate:"gte=0"`
}

// WorkbookLayout configures the daily-schedule workbook.
type WorkbookLayout struct {
	Landscape       bool             `yaml:"landscape"`
	ShowGridLines   bool             `yaml:"show_grid_lines"`
	FontFamily      string           `yaml:"font_family" validate:"required"`
	TitleFontPt     float64          `yaml:"title_font_pt" validate:"gt=0"`
	TitleColor      string           `yaml:"title_color"`
	TitleUnderline  bool             `yaml:"title_underline"`
	MergedTitle     bool             `yaml:"merged_title"`
	TitleText       string           `yaml:"title_text" validate:"required"`
	DateText        string           `yaml:"date_text,omitempty"`
	DateColumn      int              `yaml:"date_column" validate:"gte=0"`
	HeaderRow       int              `yaml:"header_row" validate:"gte=2"`
	HeaderFontPt    float64          `yaml:"header_font_pt" validate:"gt=0"`
	HeaderBorder    bool             `yaml:"header_border"`
	HeaderUnderline bool             `yaml:"header_underline"`
	BlockFontPt     float64          `yaml:"block_font_pt" validate:"gt=0"`
	BlockTitleRows  int              `yaml:"block_title_rows" validate:"min=1,max=2"`
	BlockUnderline  bool             `yaml:"block_underline"`
	BodyFontPt      float64          `yaml:"body_font_pt" validate:"gt=0"`
	LeadingSpacer   bool             `yaml:"leading_spacer"`
	Columns         []WorkbookColumn `yaml:"columns" validate:"required,min=1,dive"`
}

// WorkbookColumn is one spreadsheet column. Width is used unless Scale is set.
type WorkbookColumn struct {
	Header string              `yaml:"header" validate:"required"`
	Field  string              `yaml:"field" validate:"oneof=start end section title instructor room room_number"`
	Width  float64             `yaml:"width,omitempty" validate:"gte=0"`
	Scale  *layout.ColumnScale `yaml:"scale,omitempty"`
}

// SlideLayout configures the per-day slide deck.
type SlideLayout struct {
	Template         string             `yaml:"template" validate:"required"`
	HeaderText       string             `yaml:"header_text" validate:"required"`
	HeaderFont       Font               `yaml:"header_font"`
	BodyFont         Font               `yaml:"body_font"`
	HeaderRows       int                `yaml:"header_rows" validate:"gte=0"`
	Columns          []string           `yaml:"columns" validate:"required,min=1,dive,oneof=start end section title instructor room room_number"`
	RowColors        []string           `yaml:"row_colors" validate:"len=2,dive,len=6,hexadecimal"`
	FloorHeaderColor string             `yaml:"floor_header_color,omitempty"`
	FloorRoomHeader  string             `yaml:"floor_room_header,omitempty"`
	Scaling          string             `yaml:"scaling" validate:"oneof=density width"`
	Density          layout.DensityFont `yaml:"density,omitempty"`
	Width            layout.WidthFont   `yaml:"width,omitempty"`
	BlockSlides      []BlockSlide       `yaml:"block_slides" validate:"required,min=1,dive"`
}

// BlockSlide ties a time block to a slide of the template deck (1-based order).
type BlockSlide struct {
	Block string `yaml:"block" validate:"required"`
	Slide int    `yaml:"slide" validate:"gt=0"`
}

// Font is a run style used in slides.
type Font struct {
	Family    string  `yaml:"family" validate:"required"`
	SizePt    float64 `yaml:"size_pt" validate:"gte=0"`
	Bold      bool    `yaml:"bold"`
	Underline bool    `yaml:"underline"`
	Color     string  `yaml:"color,omitempty"`
}

// Label returns the display name, falling back to the short name.
func (p *LocationProfile) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// HasFloors reports whether rooms are split into floor buckets.
func (p *LocationProfile) HasFloors() bool {
	return len(p.Floors) > 0
}

// Location loads the profile time zone.
func (p *LocationProfile) Location() (*time.Location, error) {
	return time.LoadLocation(p.TimeZone)
}

// StripRoom removes the room prefix ("Classroom 512" -> "512").
func (p *LocationProfile) StripRoom(room string) string {
	if p.RoomPrefix == "" {
		return room
	}
	return strings.TrimSpace(strings.Replace(room, p.RoomPrefix, "", 1))
}

// SignRoom renders a room for a sign, swapping the prefix for RoomLabel if set.
func (p *LocationProfile) SignRoom(room string) string {
	if p.RoomPrefix == "" || p.Signage.RoomLabel == "" {
		return room
	}
	return strings.Replace(room, p.RoomPrefix, p.Signage.RoomLabel, 1)
}

// Asset resolves a template path against dir unless it is already absolute.
func Asset(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// Expand fills the {title}, {weekday}, {date} and {room} placeholders.
func (p *LocationProfile) Expand(text string, date time.Time, room string) string {
	return strings.NewReplacer(
		"{title}", p.Title,
		"{location}", p.Name,
		"{weekday}", date.Weekday().String(),
		"{date}", date.Format(schedule.LongDateLayout),
		"{room}", room,
	).Replace(text)
}
