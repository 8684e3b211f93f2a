package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uniform names declared by shader.vs and shader.fs.
const (
	WorldUniform   = "gWorld"
	SamplerUniform = "gSampler"
)

// maxInfoLog caps how much of a compiler or linker log is reported.
const maxInfoLog = 1024

// Program is a linked and validated shader program with its uniform locations.
// A location of -1 means the uniform is not active in the program.
type Program struct {
	ID         uint32
	WorldLoc   int32
	SamplerLoc int32
}

// CompileProgram compiles the two shader stages, links and validates them,
// makes the program current and resolves its uniforms.
//
// A stage that fails to compile is logged and still attached; the link that
// follows then fails and its error is returned.
func CompileProgram(vertexSource, fragmentSource string) (*Program, error) {
	program := gl.CreateProgram()
	if program == 0 {
		return nil, errors.New("error creating shader program")
	}

	if err := addShader(program, vertexSource, gl.VERTEX_SHADER); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	if err := addShader(program, fragmentSource, gl.FRAGMENT_SHADER); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	var status int32
	gl.LinkProgram(program)
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("error linking shader program: '%s'", log)
	}

	// Validation checks against current state, so a vertex array must be bound.
	gl.ValidateProgram(program)
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("invalid shader program: '%s'", log)
	}

	gl.UseProgram(program)

	p := &Program{
		ID:         program,
		WorldLoc:   gl.GetUniformLocation(program, gl.Str(WorldUniform+"\x00")),
		SamplerLoc: gl.GetUniformLocation(program, gl.Str(SamplerUniform+"\x00")),
	}
	slog.Debug("shader program ready", "id", p.ID, "gWorld", p.WorldLoc, "gSampler", p.SamplerLoc)

	return p, nil
}

// SetSampler points the sampler uniform at a texture unit index.
func (p *Program) SetSampler(unit int32) {
	gl.Uniform1i(p.SamplerLoc, unit)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// addShader compiles source as a shaderType stage and attaches it to program.
// Only failing to create the shader object is an error.
func addShader(program uint32, source string, shaderType uint32) error {
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return fmt.Errorf("error creating shader type %d", shaderType)
	}

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		slog.Error("error compiling shader",
			"stage", stageName(shaderType),
			"type", shaderType,
			"log", shaderInfoLog(shader))
	}

	gl.AttachShader(program, shader)
	// Deletion is deferred by GL until the shader is detached from program.
	gl.DeleteShader(shader)

	return nil
}

func shaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	length = min(length, maxInfoLog)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length+1)
	gl.GetShaderInfoLog(shader, length, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func programInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	length = min(length, maxInfoLog)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length+1)
	gl.GetProgramInfoLog(program, length, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return "unknown"
	}
}
