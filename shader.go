package s2d

import (
	"errors"
	"log/slog"
)

// Shader is a compiled shader object.
type Shader struct {
	Stage  ShaderStage
	Name   string
	Handle uint32
}

// Program is a linked (or attempted) program object for one pipeline.
type Program struct {
	Pipeline Pipeline
	Handle   uint32
}

// CompileShader compiles source for the given stage.
// On failure the driver's info log is logged and returned in a
// *ShaderCompileError; the shader object, if any, is deleted.
func CompileShader(dev Device, l *slog.Logger, stage ShaderStage, name, source string) (Shader, error) {
	l = loggerOr(l)

	handle := dev.CreateShader(stage)
	if handle == 0 {
		err := &ShaderCompileError{Stage: stage, Name: name, Log: "failed to create shader object"}
		l.Error("shader create failed", "stage", stage, "name", name)
		return Shader{}, err
	}

	dev.CompileShader(handle, source)
	if ok, infoLog := dev.ShaderStatus(handle); !ok {
		l.Error("shader compile failed", "stage", stage, "name", name, "log", infoLog)
		dev.DeleteShader(handle)
		return Shader{}, &ShaderCompileError{Stage: stage, Name: name, Log: infoLog}
	}

	l.Debug("shader compiled", "stage", stage, "name", name, "handle", handle)
	return Shader{Stage: stage, Name: name, Handle: handle}, nil
}

// BuildProgram links vertex and fragment into a new program for pipeline,
// binding the fragment output fragOut to color number 0.
//
// A zero program handle returns *ProgramCreateError. A failed link returns
// the program anyway together with a *ProgramLinkError so the caller can
// choose between failing and rendering degraded. The shaders stay attached.
func BuildProgram(dev Device, l *slog.Logger, pipeline Pipeline, vertex, fragment Shader, fragOut string) (Program, error) {
	l = loggerOr(l)

	handle := dev.CreateProgram()
	if handle == 0 {
		l.Error("failed to create shader program", "pipeline", pipeline)
		return Program{}, &ProgramCreateError{Pipeline: pipeline}
	}
	prog := Program{Pipeline: pipeline, Handle: handle}

	dev.AttachShader(handle, vertex.Handle)
	dev.AttachShader(handle, fragment.Handle)
	dev.BindFragDataLocation(handle, 0, fragOut)
	dev.LinkProgram(handle)

	if ok, infoLog := programLinked(dev, l, handle); !ok {
		return prog, &ProgramLinkError{Pipeline: pipeline, Handle: handle, Log: infoLog}
	}

	l.Debug("shader program linked", "pipeline", pipeline, "handle", handle)
	return prog, nil
}

// CheckLinked reports whether program linked, logging an error if not.
func CheckLinked(dev Device, l *slog.Logger, program uint32) bool {
	ok, _ := programLinked(dev, loggerOr(l), program)
	return ok
}

func programLinked(dev Device, l *slog.Logger, program uint32) (bool, string) {
	ok, infoLog := dev.ProgramStatus(program)
	if !ok {
		l.Error("shader program was not linked", "program", program, "log", infoLog)
	}
	return ok, infoLog
}

// isLinkError reports whether err is only a link failure.
func isLinkError(err error) bool {
	var linkErr *ProgramLinkError
	return errors.As(err, &linkErr)
}
