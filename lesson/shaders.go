package lesson

// Attribute slots bound before linking so the interleaved vertex layout
// does not depend on driver-assigned locations.
const (
	positionSlot = 0
	colorSlot    = 1
)

const (
	mvpUniformName     = "u_MVPMatrix"
	positionAttribName = "a_Position"
	colorAttribName    = "a_Color"
)

const vertexShader = `uniform mat4 u_MVPMatrix;

attribute vec4 a_Position;
attribute vec4 a_Color;

varying vec4 v_Color;

void main()
{
	v_Color = a_Color;
	gl_Position = u_MVPMatrix * a_Position;
}
`

const fragmentShader = `precision mediump float;

varying vec4 v_Color;

void main()
{
	gl_FragColor = v_Color;
}
`
