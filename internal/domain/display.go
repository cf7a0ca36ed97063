package domain

import "strconv"

// DisplayOptions control how grid cells are labelled. ShowExportTools also
// switches on the completeness pass of the view.
type DisplayOptions struct {
	ShowAcronym     bool `json:"show_acronym"`
	ShowCapacity    bool `json:"show_capacity"`
	ShowExportTools bool `json:"show_export_tools"`
	ShowRoom        bool `json:"show_room"`
	ShowSectionCode bool `json:"show_section_code"`
}

// DefaultDisplayOptions shows section codes and rooms
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		ShowRoom:        true,
		ShowSectionCode: true,
	}
}

// Label renders an occupant according to the options
func (o DisplayOptions) Label(occ Occupant) string {
	label := occ.Discipline
	if o.ShowAcronym && occ.Acronym != "" {
		label = occ.Acronym
	}
	if o.ShowSectionCode {
		label += " " + occ.Code
	}
	return label
}

// Details renders the secondary line of an occupant (room, capacity)
func (o DisplayOptions) Details(occ Occupant) string {
	var out string
	if o.ShowRoom && occ.Room != "" {
		out = occ.Room
	}
	if o.ShowCapacity && occ.Capacity != nil {
		if out != "" {
			out += " "
		}
		out += "(" + strconv.Itoa(*occ.Capacity) + ")"
	}
	return out
}
