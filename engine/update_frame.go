package engine

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *Session
}

func newUpdateFrame(dt float64, session *Session, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Session:   session,
	}
}
