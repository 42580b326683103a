package profile

import (
	"autosigns/pkg/layout"
	"autosigns/pkg/schedule"
)

const (
	defaultFinalApproval = "Final Approval"
	defaultTBASentinel   = "Instructor To Be Announced"
	defaultTBAToken      = "TBA"
	defaultTitle         = "UC Berkeley Extension"
	defaultTimeZone      = "America/Los_Angeles"
)

var (
	rowColors   = []string{"FFFFFF", "FAC090"}
	headerColor = "FFFF00"
)

// Default returns the built-in location profiles.
func Default() *Set {
	return &Set{
		FinalApproval: defaultFinalApproval,
		TBASentinel:   defaultTBASentinel,
		TBAToken:      defaultTBAToken,
		Profiles:      []LocationProfile{goldenBear(), sanFrancisco()},
	}
}

func goldenBear() LocationProfile {
	return LocationProfile{
		Name:          "GBC",
		DisplayName:   "Golden Bear Center",
		BuildingToken: "GBC",
		Building:      "GBC - UC Berkeley Extension Golden Bear Center, 1995 University Ave.",
		Title:         defaultTitle,
		TimeZone:      defaultTimeZone,
		RoomPrefix:    "Classroom",
		Blocks: []schedule.TimeBlock{
			{Name: "Morning", Label: "Morning Classes", From: schedule.NewClock(0, 0), To: schedule.NewClock(12, 0)},
			{Name: "Afternoon", Label: "Afternoon Classes", From: schedule.NewClock(12, 0), To: schedule.NewClock(17, 0)},
			{Name: "Evening", Label: "Evening Classes", From: schedule.NewClock(17, 0), To: schedule.DayEnd},
		},
		Signage: SignageLayout{
			Template:     "Template-GBC.docx",
			Landscape:    true,
			PageWidthIn:  11,
			PageHeightIn: 8.5,
			MarginIn:     0.5,
			FontFamily:   "Times New Roman",
			Bold:         true,
			BaseFontPt:   4,
			Headings: []SignHeading{
				{Text: "{date}", SizePt: 48, Bold: true, Align: "center"},
				{Text: "{room}", SizePt: 36, Bold: true, Align: "left"},
				{Text: "Class:", SizePt: 36, Bold: true, Align: "left", TrailingBreakPt: 2},
			},
			TimeSeparator:    " to ",
			ColumnWidthsIn:   []float64{6.7, 3.3},
			TableFontPt:      22,
			TableAlign:       "right",
			KeepTemplateBody: true,
			TitleBreak:       true,
		},
		Workbook: WorkbookLayout{
			Landscape:      true,
			ShowGridLines:  true,
			FontFamily:     "Verdana",
			TitleFontPt:    18,
			TitleColor:     "000000",
			TitleText:      "{title}",
			DateText:       "{weekday} {date}",
			DateColumn:     4,
			HeaderRow:      3,
			HeaderFontPt:   18,
			HeaderBorder:   true,
			BlockFontPt:    18,
			BlockTitleRows: 1,
			BodyFontPt:     18,
			Columns: []WorkbookColumn{
				{Header: "Start Time", Field: FieldStart, Width: 21.5},
				{Header: "End Time", Field: FieldEnd, Width: 19},
				{Header: "Section Number", Field: FieldSection, Scale: &layout.ColumnScale{MinChars: 14, Offset: 1, Factor: 40.0 / 19.0}},
				{Header: "Section Title", Field: FieldTitle, Width: 64},
				{Header: "Instructor", Field: FieldInstructor, Scale: &layout.ColumnScale{
					MinChars: 10, MaxChars: 20, Offset: 8.0 / 9.0, Factor: 27.0 / 14.0,
					Exclude: []string{defaultTBASentinel},
				}},
				{Header: "Room", Field: FieldRoom, Scale: &layout.ColumnScale{MinChars: 4, Offset: -7.0 / 13.0, Factor: 13.0 / 6.0}},
			},
		},
		Slides: SlideLayout{
			Template:   "Template-GBC.pptx",
			HeaderText: "{title} {weekday}, {date}",
			HeaderFont: Font{Family: "Calibri", SizePt: 120, Bold: true, Color: headerColor},
			BodyFont:   Font{Family: "Calibri", Bold: true},
			HeaderRows: 1,
			Columns:    []string{FieldStart, FieldEnd, FieldTitle, FieldInstructor, FieldRoom},
			RowColors:  append([]string(nil), rowColors...),
			Scaling:    ScalingWidth,
			Width:      layout.WidthFont{Budget: 950, Max: 65},
			BlockSlides: []BlockSlide{
				{Block: "Morning", Slide: 2},
				{Block: "Afternoon", Slide: 3},
				{Block: "Evening", Slide: 4},
			},
		},
	}
}

func sanFrancisco() LocationProfile {
	return LocationProfile{
		Name:          "SFC",
		DisplayName:   "San Francisco Campus",
		BuildingToken: "SFCAMPUS",
		Building:      "SFCAMPUS - San Francisco Campus, 160 Spear St.",
		Title:         defaultTitle,
		TimeZone:      defaultTimeZone,
		RoomPrefix:    "Classroom",
		Blocks: []schedule.TimeBlock{
			{Name: "Daytime", Label: "Daytime Classes", From: schedule.NewClock(0, 0), To: schedule.NewClock(17, 0)},
			{Name: "Evening", Label: "Evening Classes", From: schedule.NewClock(17, 0), To: schedule.DayEnd},
		},
		Floors: []schedule.FloorBucket{
			{Name: "5th Floor", Max: "Classroom 515"},
			{Name: "6th Floor", Min: "Classroom 602", Max: "Classroom 613"},
			{Name: "7th Floor", Min: "Classroom 702"},
		},
		Signage: SignageLayout{
			Template:     "Template-SFC.docx",
			PageWidthIn:  8.5,
			PageHeightIn: 11,
			MarginIn:     0.5,
			FontFamily:   "Arial",
			BaseFontPt:   1,
			SpaceAfterPt: 10,
			Headings: []SignHeading{
				{Text: "{weekday}", SizePt: 30, Bold: true, Align: "center"},
				{Text: "{room}", SizePt: 24, Align: "center", TrailingBreakPt: 34},
			},
			TableHeader:    []string{"Course", "Time"},
			TimeSeparator:  " - ",
			ColumnWidthsIn: []float64{5, 3.3},
			TableFontPt:    22,
			TableAlign:     "right",
			RoomLabel:      "Room",
		},
		Workbook: WorkbookLayout{
			FontFamily:      "Arial",
			TitleFontPt:     30,
			TitleColor:      "FF0000",
			TitleUnderline:  true,
			MergedTitle:     true,
			TitleText:       "{title} - {weekday}, {date}",
			HeaderRow:       2,
			HeaderFontPt:    24,
			HeaderUnderline: true,
			BlockFontPt:     24,
			BlockTitleRows:  2,
			BlockUnderline:  true,
			BodyFontPt:      21,
			LeadingSpacer:   true,
			Columns: []WorkbookColumn{
				{Header: "Start Time", Field: FieldStart, Width: 18.57},
				{Header: "End Time", Field: FieldEnd, Width: 18.57},
				{Header: "Section Number", Field: FieldSection, Width: 43},
				{Header: "Section Title", Field: FieldTitle, Width: 100},
				{Header: "Room", Field: FieldRoomNumber, Width: 13.86},
			},
		},
		Slides: SlideLayout{
			Template:         "Template-SFC.pptx",
			HeaderText:       "{title} - {weekday}, {date}",
			HeaderFont:       Font{Family: "Calibri", SizePt: 70, Bold: true, Color: headerColor},
			BodyFont:         Font{Family: "Arial", Bold: true},
			Columns:          []string{FieldStart, FieldEnd, FieldSection, FieldTitle, FieldRoomNumber},
			RowColors:        append([]string(nil), rowColors...),
			FloorHeaderColor: headerColor,
			FloorRoomHeader:  "Room",
			Scaling:          ScalingDensity,
			Density:          layout.DensityFont{Slope: -1.0603, Intercept: 72.336, Max: 60, Min: 1},
			BlockSlides: []BlockSlide{
				{Block: "Daytime", Slide: 2},
				{Block: "Evening", Slide: 3},
			},
		},
	}
}
