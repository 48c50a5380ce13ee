package render

var (
	VertexShader = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

out vec3 vWorldPos;
out vec3 vNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    vWorldPos = vec3(model * vec4(aPos, 1.0));
    vNormal = mat3(transpose(inverse(model))) * aNormal;
    gl_Position = projection * view * vec4(vWorldPos, 1.0);
}
` + "\x00"

	// FragmentShader must stay in step with Shade.
	FragmentShader = `
#version 330 core
out vec4 FragColor;

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 u_BaseColor;
uniform float u_Roughness;
uniform float u_Transmission;

uniform vec3 u_LightPos;
uniform vec3 u_ViewPos;

void main() {
    vec3 N = normalize(vNormal);
    if (!gl_FrontFacing) {
        N = -N;
    }

    vec3 L = normalize(u_LightPos - vWorldPos);
    vec3 V = normalize(u_ViewPos - vWorldPos);
    vec3 H = normalize(L + V);
    float NdotV = max(dot(N, V), 0.001);

    float F0 = 0.04;
    float fresnel = F0 + (1.0 - F0) * pow(1.0 - NdotV, 4.0);

    float specPower = (1.0 - u_Roughness) * 128.0;
    float spec = pow(max(dot(N, H), 0.0), specPower);
    vec3 specular = vec3(spec) * fresnel * 4.0;

    float diff = max(dot(N, L), 0.0);
    vec3 ambient = u_BaseColor * 0.55;
    vec3 diffuse = diff * u_BaseColor * 1.8;

    float alpha = clamp((1.0 - u_Transmission) + fresnel * 0.5, 0.3, 0.95);

    vec3 result = ambient + diffuse + specular;
    result = result / (result + vec3(1.0));

    FragColor = vec4(result, alpha);
}
` + "\x00"
)

// Uniform names, NUL terminated for gl.Str.
const (
	UniformModel        = "model\x00"
	UniformView         = "view\x00"
	UniformProjection   = "projection\x00"
	UniformBaseColor    = "u_BaseColor\x00"
	UniformRoughness    = "u_Roughness\x00"
	UniformTransmission = "u_Transmission\x00"
	UniformLightPos     = "u_LightPos\x00"
	UniformViewPos      = "u_ViewPos\x00"
)
