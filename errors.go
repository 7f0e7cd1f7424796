package s2d

import "fmt"

// ShaderCompileError is returned when the driver rejects a shader source.
type ShaderCompileError struct {
	Stage ShaderStage
	Name  string // Human readable shader name, e.g. "textured fragment"
	Log   string // Driver info log
}

func (e *ShaderCompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s shader %q failed to compile", e.Stage, e.Name)
	}
	return fmt.Sprintf("%s shader %q failed to compile: %s", e.Stage, e.Name, e.Log)
}

// ProgramCreateError is returned when the driver refuses to allocate a
// program object.
type ProgramCreateError struct {
	Pipeline Pipeline
}

func (e *ProgramCreateError) Error() string {
	return fmt.Sprintf("failed to create %s shader program", e.Pipeline)
}

// ProgramLinkError is returned alongside a program whose link failed.
// Handle is still a valid program object.
type ProgramLinkError struct {
	Pipeline Pipeline
	Handle   uint32
	Log      string
}

func (e *ProgramLinkError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s shader program %d was not linked", e.Pipeline, e.Handle)
	}
	return fmt.Sprintf("%s shader program %d was not linked: %s", e.Pipeline, e.Handle, e.Log)
}
