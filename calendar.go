package main

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// ---------------------------------------------------------------------------
// Business Calendar
// ---------------------------------------------------------------------------

// provinceHolidays maps German state abbreviations to their holiday slices.
var provinceHolidays = map[string][]*cal.Holiday{
	"BW": de.HolidaysBW, // Baden-Württemberg
	"BY": de.HolidaysBY, // Bayern (Bavaria)
	"BE": de.HolidaysBE, // Berlin
	"BB": de.HolidaysBB, // Brandenburg
	"HB": de.HolidaysHB, // Bremen
	"HH": de.HolidaysHH, // Hamburg
	"HE": de.HolidaysHE, // Hessen (Hesse)
	"MV": de.HolidaysMV, // Mecklenburg-Vorpommern
	"NI": de.HolidaysNI, // Niedersachsen (Lower Saxony)
	"NW": de.HolidaysNW, // Nordrhein-Westfalen (North Rhine-Westphalia)
	"RP": de.HolidaysRP, // Rheinland-Pfalz (Rhineland-Palatinate)
	"SL": de.HolidaysSL, // Saarland
	"SN": de.HolidaysSN, // Sachsen (Saxony)
	"ST": de.HolidaysST, // Sachsen-Anhalt (Saxony-Anhalt)
	"SH": de.HolidaysSH, // Schleswig-Holstein
	"TH": de.HolidaysTH, // Thüringen (Thuringia)
}

// newBusinessCalendar creates a calendar with the holidays of the given
// province. Unknown or empty provinces get weekends only.
func newBusinessCalendar(province string) *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = "invoicepdf"
	c.Description = "Payment due date calendar"

	if holidays, ok := provinceHolidays[province]; ok {
		c.AddHoliday(holidays...)
	}
	return c
}

// dueDate returns issued + days, moved forward to the next workday.
func dueDate(c *cal.BusinessCalendar, issued time.Time, days int) time.Time {
	due := issued.AddDate(0, 0, days)
	// a year without a single workday does not exist; the bound guards bad calendars
	for i := 0; i < 366 && !c.IsWorkday(due); i++ {
		due = due.AddDate(0, 0, 1)
	}
	return due
}
