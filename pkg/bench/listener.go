package bench

// Arena progress callbacks. Every worker gets its own clone, so a listener
// only needs to synchronize state it shares between clones.
type ListenerLike interface {
	Clone() ListenerLike
	SetRow(row int)
	OnStart()
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
}

// Does nothing
type DefaultListener struct {
	row int
}

func (d *DefaultListener) Clone() ListenerLike                  { return &DefaultListener{row: d.row} }
func (d *DefaultListener) SetRow(row int)                       { d.row = row }
func (d *DefaultListener) OnStart()                             {}
func (d *DefaultListener) OnGameStart(info VersusWorkerInfo)    {}
func (d *DefaultListener) OnMoveMade(info VersusWorkerInfo)     {}
func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {}
func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {}
func (d *DefaultListener) Summary(summary VersusSummaryInfo)    {}
func (d *DefaultListener) OnEnd()                               {}
