package opengl

import (
	"fmt"
	"strings"

	"Fletch3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	uniforms       *UniformCache
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 viewProjection;

out vec3 Normal;
out vec3 FragPos;
out vec3 LocalPos;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = transpose(inverse(mat3(model))) * inNormal;
    LocalPos = inPosition;
    gl_Position = viewProjection * vec4(FragPos, 1.0);
}
` + "\x00"

// The ring bands follow the scoring rings: ten equal steps of the face
// radius, coloured gold, red, blue, black, white from the centre out, with a
// thin dark line every fifth of the radius.
var fragmentShaderSource = `#version 330 core

in vec3 Normal;
in vec3 FragPos;
in vec3 LocalPos;

uniform struct Light {
    vec3 position;
    vec3 color;
    float intensity;
    float ambientStrength;
} light;
uniform vec3 viewPos;
uniform vec4 color;
uniform float ambient;
uniform float diffusivity;
uniform float specularity;
uniform float smoothness;
uniform bool rings;

out vec4 FragColor;

vec3 ringColor(float ratio) {
    float band = fract(ratio * 5.0);
    if (ratio < 0.98 && (band < 0.025 || band > 0.975)) {
        return ratio > 0.6 && ratio < 0.8 ? vec3(1.0) : vec3(0.0);
    }
    if (ratio < 0.2) return vec3(0.83, 0.68, 0.21);
    if (ratio < 0.4) return vec3(1.0, 0.0, 0.0);
    if (ratio < 0.6) return vec3(0.2, 0.7, 1.0);
    if (ratio < 0.8) return vec3(0.0);
    return vec3(1.0);
}

void main() {
    vec3 base = color.rgb;
    if (rings) {
        base = ringColor(length(LocalPos.yz));
    }

    vec3 norm = normalize(Normal);
    vec3 lightDir = normalize(light.position - FragPos);
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 halfway = normalize(lightDir + viewDir);

    float diff = max(dot(norm, lightDir), 0.0);
    float spec = pow(max(dot(norm, halfway), 0.0), smoothness);

    vec3 result = base * max(ambient, light.ambientStrength)
        + base * light.color * diffusivity * diff
        + light.color * specularity * spec;
    FragColor = vec4(result * light.intensity, color.a);
}
` + "\x00"

func NewDefaultShader() *Shader {
	return &Shader{
		vertexSource:   vertexShaderSource,
		fragmentSource: fragmentShaderSource,
	}
}

// Compile builds and links the program. Needs a current GL context.
func (shader *Shader) Compile() error {
	vertex, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fragment, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return err
	}
	program, err := GenShaderProgram(vertex, fragment)
	if err != nil {
		return err
	}
	shader.program = program
	shader.uniforms = NewUniformCache(program)
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) Uniforms() *UniformCache {
	return shader.uniforms
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile", zap.Uint32("shaderType", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("compile shader type %d: %s", shaderType, log)
	}
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link shader program: %s", log)
	}
	logger.Log.Debug("Shader program linked", zap.Uint32("program", program))
	return program, nil
}
