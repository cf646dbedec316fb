package caldata_test

import (
	"fmt"

	"github.com/michael-gallo/caldata"
)

func ExampleNewCalendarParser() {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//x//y//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:a\r\n" +
		"DTSTAMP:19700101T000000Z\r\n" +
		"DTSTART:19700329T020000Z\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, err := caldata.NewCalendarParser([]byte(input)).ExpectOne()
	if err != nil {
		panic(err)
	}
	fmt.Println(cal.Version())
	fmt.Println(len(cal.Events))
	fmt.Println(cal.Events[0].UID())
	// Output: 2.0
	// 1
	// a
}

func ExampleNewVcardParser() {
	input := "BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"FN:Ada Lovelace\r\n" +
		"END:VCARD\r\n"

	card, err := caldata.NewVcardParser([]byte(input)).ExpectOne()
	if err != nil {
		panic(err)
	}
	fmt.Println(card.FormattedName())
	// Output: Ada Lovelace
}
