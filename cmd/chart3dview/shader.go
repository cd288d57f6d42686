package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec2 uv;
		uniform mat4 projection;
		out vec2 frag_uv;
		void main() {
			frag_uv = uv;
			gl_Position = projection * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec2 frag_uv;
		uniform sampler2D frame;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(frame, frag_uv);
		}
	` + "\x00"
)

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(msg, "\x00"))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
		return 0, fmt.Errorf("compile shader %#x: %s", shaderType, strings.TrimRight(msg, "\x00"))
	}
	return shader, nil
}

// frameQuad is a window-sized textured quad that shows the latest
// CPU-rendered frame.
type frameQuad struct {
	program uint32
	vao     uint32
	buffers [2]uint32
	texture uint32
	width   int32
	height  int32
}

func newFrameQuad(program uint32, width, height int) *frameQuad {
	q := &frameQuad{program: program, width: int32(width), height: int32(height)}
	w, h := float32(width), float32(height)
	// x, y in pixels; u, v with the first image row at v = 0.
	vertices := []float32{
		0, 0, 0, 0,
		w, 0, 1, 0,
		w, h, 1, 1,
		0, h, 0, 1,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(2, &q.buffers[0])
	gl.BindBuffer(gl.ARRAY_BUFFER, q.buffers[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.buffers[1])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	vp := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vp)
	gl.VertexAttribPointer(vp, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	uv := uint32(gl.GetAttribLocation(program, gl.Str("uv\x00")))
	gl.EnableVertexAttribArray(uv)
	gl.VertexAttribPointer(uv, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	gl.GenTextures(1, &q.texture)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, q.width, q.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	return q
}

// upload replaces the texture contents. pix holds tightly packed RGBA rows.
func (q *frameQuad) upload(pix []uint8) {
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, q.width, q.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (q *frameQuad) draw() {
	gl.UseProgram(q.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.BindVertexArray(q.vao)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (q *frameQuad) delete() {
	gl.DeleteTextures(1, &q.texture)
	gl.DeleteBuffers(2, &q.buffers[0])
	gl.DeleteVertexArrays(1, &q.vao)
}
