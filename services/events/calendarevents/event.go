package calendarevents

const (
	TopicName                = "calendar"
	calendarEventCreatedName = TopicName + ".event.created"
	calendarEventUpdatedName = TopicName + ".event.updated"
	calendarEventDeletedName = TopicName + ".event.deleted"
)

type CalendarEventCreated struct {
	CalendarUID string
	EventUID    string
	Summary     string
}

func (e CalendarEventCreated) GetEventTypeName() string {
	return calendarEventCreatedName
}

func (e CalendarEventCreated) GetAggregateName() string {
	return e.CalendarUID
}

type CalendarEventUpdated struct {
	CalendarUID string
	EventUID    string
	Summary     string
}

func (e CalendarEventUpdated) GetEventTypeName() string {
	return calendarEventUpdatedName
}

func (e CalendarEventUpdated) GetAggregateName() string {
	return e.CalendarUID
}

type CalendarEventDeleted struct {
	CalendarUID string
	EventUID    string
}

func (e CalendarEventDeleted) GetEventTypeName() string {
	return calendarEventDeletedName
}

func (e CalendarEventDeleted) GetAggregateName() string {
	return e.CalendarUID
}
