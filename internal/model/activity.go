package model

// Activity описывает кружок: название, расписание, вместимость
// и список записанных участников (email-адреса студентов).
// MaxParticipants носит справочный характер и при записи не проверяется.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone возвращает независимую копию активности,
// чтобы вызывающий код не мог изменить внутреннее состояние реестра.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}
