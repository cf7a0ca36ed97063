package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	recordValidator     *validator.Validate
	recordValidatorOnce sync.Once
)

func validate() *validator.Validate {
	recordValidatorOnce.Do(func() {
		recordValidator = validator.New()
	})
	return recordValidator
}

// BuildIndex turns raw course records into a ScheduleIndex.
//
// Sections without meetings and disciplines without sections are dropped.
// Records missing a field the index needs (course name, section code, meeting
// day or times) are skipped; when anything was skipped the returned index is
// still usable and the error is a *MalformedDataError listing the problems.
// A missing course id never blocks indexing.
func BuildIndex(courses []RawCourse) (*ScheduleIndex, error) {
	idx := NewScheduleIndex()
	var problems []string

	for i, course := range courses {
		course.Name = strings.TrimSpace(course.Name)
		if err := validate().Struct(course); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %s", course.Describe(i), describeValidation(err)))
			continue
		}

		d := NewDiscipline(course.Name, string(course.ID))
		for j, shift := range course.Shifts {
			shift.Code = strings.TrimSpace(shift.Code)
			if err := validate().Struct(shift); err != nil {
				problems = append(problems, fmt.Sprintf("%s shift #%d: %s", course.Describe(i), j+1, describeValidation(err)))
				continue
			}

			section := &Section{
				Capacity: shift.Vacancies,
				Code:     shift.Code,
				Type:     DeriveSectionType(shift.Type, shift.Code),
			}
			for k, raw := range shift.Meetings {
				if err := validate().Struct(raw); err != nil {
					problems = append(problems, fmt.Sprintf("%s %s meeting #%d: %s", course.Describe(i), shift.Code, k+1, describeValidation(err)))
					continue
				}
				section.Meetings = append(section.Meetings, Meeting{
					Day:  NormalizeWeekday(raw.Weekday),
					Room: strings.TrimSpace(raw.Room),
					Slot: TimeSlot{Start: strings.TrimSpace(raw.Start), End: strings.TrimSpace(raw.End)},
				})
			}
			if len(section.Meetings) == 0 {
				continue
			}
			if !d.AddSection(section) {
				problems = append(problems, fmt.Sprintf("%s: duplicate section %q", course.Describe(i), shift.Code))
			}
		}

		if d.Len() == 0 {
			continue
		}
		if !idx.add(d) {
			problems = append(problems, fmt.Sprintf("%s: duplicate discipline", course.Describe(i)))
		}
	}

	if len(problems) > 0 {
		return idx, &MalformedDataError{Problems: problems}
	}
	return idx, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}
