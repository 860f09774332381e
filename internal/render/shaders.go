package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite vertex shader: point sprites in arena space. aSize is the sprite
// diameter in arena pixels.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRotation;

void main() {
    vec2 screenPos = (aWorldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    float ps = floor(aSize * uZoom + 0.5);
    gl_PointSize = max(1.0, ps);
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Square fragment shader: solid point sprite.
const squareFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Disc fragment shader: filled circle with a soft one-texel rim.
const discFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    float edge = fwidth(dist);
    float a = 1.0 - smoothstep(1.0 - edge, 1.0, dist);
    if (a <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * a);
}
` + "\x00"

// Glow fragment shader: additive radial falloff for light sprites.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff;
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

// Ring fragment shader: circle outline for collision debugging.
const ringFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    float w = max(fwidth(dist) * 1.5, 0.02);
    if (dist > 1.0 || dist < 1.0 - w) discard;
    FragColor = vColor;
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
