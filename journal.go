package argsh

// journal buffers scope writes during a parse. Tokens are validated and
// coerced as they are consumed, but nothing lands in the caller's scope
// until the whole command line checked out: a failed parse leaves every
// binding at its pre-call value. Replay order matches consumption order,
// so repeated-flag appends keep their left-to-right sequence.
type journal struct {
	sc  Scope
	ops []journalOp
}

type opKind int

const (
	opSet opKind = iota
	opAppend
	opSetAll
)

type journalOp struct {
	kind   opKind
	name   string
	value  string
	values []string
}

func newJournal(sc Scope) *journal {
	return &journal{sc: sc}
}

func (j *journal) Set(name, value string) {
	j.ops = append(j.ops, journalOp{kind: opSet, name: name, value: value})
}

func (j *journal) Append(name, value string) {
	j.ops = append(j.ops, journalOp{kind: opAppend, name: name, value: value})
}

func (j *journal) SetAll(name string, values []string) {
	j.ops = append(j.ops, journalOp{kind: opSetAll, name: name, values: values})
}

// apply replays the buffered writes onto the scope. Names were validated
// when the fields parsed, so replay errors indicate a broken Scope
// implementation and surface as the first error encountered.
func (j *journal) apply() error {
	for _, op := range j.ops {
		var err error
		switch op.kind {
		case opSet:
			err = j.sc.Set(op.name, op.value)
		case opAppend:
			err = j.sc.Append(op.name, op.value)
		case opSetAll:
			err = j.sc.SetAll(op.name, op.values)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
