package video

// Exported register offsets, mirroring the unexported ones in io.go, so an
// out-of-core collaborator (the devkit inspector, a ROM's own diagnostic
// code via the bus) can address the video I/O slot without reaching past
// the same ReadIO/WriteIO entry point every other caller uses.
const (
	RegADDRL         = regADDRL
	RegADDRM         = regADDRM
	RegADDRH         = regADDRH
	RegDATA0         = regDATA0
	RegDATA1         = regDATA1
	RegCTRL          = regCTRL
	RegIEN           = regIEN
	RegISR           = regISR
	RegIRQL          = regIRQL
	RegComposerStart = regComposerStart
	RegLayer0Start   = regLayer0Start
	RegLayer1Start   = regLayer1Start
	RegEnd           = regEnd
)
