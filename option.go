package shortopt

// Option is a Set's record for one registered option. Name is the single
// character after the dash. Used and Values are populated by Track; Values
// holds raw value strings in command-line order and stays empty for options
// that don't take a value.
type Option struct {
	Name     byte
	TakesArg bool
	Desc     string
	Kind     Kind
	Used     bool
	Values   []string
}

// OptionDef declares one option for NewOptions.
type OptionDef struct {
	Name     byte
	TakesArg bool
	Desc     string
}
