package opengl

// Enum mirrors GLenum. The values below are taken from the GL 2.1 and
// ARB/EXT extension headers so the translators stay free of cgo.
type Enum uint32

const (
	NO_ERROR Enum = 0
	ZERO     Enum = 0
	ONE      Enum = 1

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	SRC_COLOR           Enum = 0x0300
	ONE_MINUS_SRC_COLOR Enum = 0x0301
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	DST_ALPHA           Enum = 0x0304
	ONE_MINUS_DST_ALPHA Enum = 0x0305
	DST_COLOR           Enum = 0x0306
	ONE_MINUS_DST_COLOR Enum = 0x0307

	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408

	CW  Enum = 0x0900
	CCW Enum = 0x0901

	CULL_FACE                   Enum = 0x0B44
	LIGHTING                    Enum = 0x0B50
	LIGHT_MODEL_LOCAL_VIEWER    Enum = 0x0B51
	LIGHT_MODEL_AMBIENT         Enum = 0x0B53
	FOG                         Enum = 0x0B60
	FOG_DENSITY                 Enum = 0x0B62
	FOG_START                   Enum = 0x0B63
	FOG_END                     Enum = 0x0B64
	FOG_MODE                    Enum = 0x0B65
	FOG_COLOR                   Enum = 0x0B66
	DEPTH_TEST                  Enum = 0x0B71
	NORMALIZE                   Enum = 0x0BA1
	BLEND                       Enum = 0x0BE2
	SCISSOR_TEST                Enum = 0x0C11
	PERSPECTIVE_CORRECTION_HINT Enum = 0x0C50
	UNPACK_ALIGNMENT            Enum = 0x0CF5
	ALPHA_SCALE                 Enum = 0x0D1C
	MAX_LIGHTS                  Enum = 0x0D31
	STENCIL_BITS                Enum = 0x0D57
	TEXTURE_2D                  Enum = 0x0DE1

	TEXTURE_GEN_S Enum = 0x0C60
	TEXTURE_GEN_T Enum = 0x0C61
	TEXTURE_GEN_R Enum = 0x0C62
	TEXTURE_GEN_Q Enum = 0x0C63

	NICEST Enum = 0x1102

	AMBIENT               Enum = 0x1200
	DIFFUSE               Enum = 0x1201
	SPECULAR              Enum = 0x1202
	POSITION              Enum = 0x1203
	SPOT_DIRECTION        Enum = 0x1204
	SPOT_EXPONENT         Enum = 0x1205
	SPOT_CUTOFF           Enum = 0x1206
	CONSTANT_ATTENUATION  Enum = 0x1207
	LINEAR_ATTENUATION    Enum = 0x1208
	QUADRATIC_ATTENUATION Enum = 0x1209

	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	EMISSION  Enum = 0x1600
	SHININESS Enum = 0x1601

	MODELVIEW  Enum = 0x1700
	PROJECTION Enum = 0x1701
	TEXTURE    Enum = 0x1702

	ALPHA Enum = 0x1906
	RGB   Enum = 0x1907
	RGBA  Enum = 0x1908

	SMOOTH  Enum = 0x1D01
	REPLACE Enum = 0x1E01
	ADD     Enum = 0x0104

	VENDOR     Enum = 0x1F00
	RENDERER   Enum = 0x1F01
	VERSION    Enum = 0x1F02
	EXTENSIONS Enum = 0x1F03

	S Enum = 0x2000
	T Enum = 0x2001
	R Enum = 0x2002
	Q Enum = 0x2003

	MODULATE          Enum = 0x2100
	TEXTURE_ENV_MODE  Enum = 0x2200
	TEXTURE_ENV_COLOR Enum = 0x2201
	TEXTURE_ENV       Enum = 0x2300
	SPHERE_MAP        Enum = 0x2402
	TEXTURE_GEN_MODE  Enum = 0x2500

	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
	TEXTURE_MAG_FILTER     Enum = 0x2800
	TEXTURE_MIN_FILTER     Enum = 0x2801
	TEXTURE_WRAP_S         Enum = 0x2802
	TEXTURE_WRAP_T         Enum = 0x2803
	REPEAT                 Enum = 0x2901

	EXP  Enum = 0x0800
	EXP2 Enum = 0x0801

	DEPTH_BUFFER_BIT   Enum = 0x0100
	STENCIL_BUFFER_BIT Enum = 0x0400
	COLOR_BUFFER_BIT   Enum = 0x4000

	LIGHT0 Enum = 0x4000

	TEXTURE_WRAP_R            Enum = 0x8072
	VERTEX_ARRAY              Enum = 0x8074
	NORMAL_ARRAY              Enum = 0x8075
	COLOR_ARRAY               Enum = 0x8076
	TEXTURE_COORD_ARRAY       Enum = 0x8078
	CLAMP_TO_EDGE             Enum = 0x812F
	GENERATE_MIPMAP           Enum = 0x8191
	LIGHT_MODEL_COLOR_CONTROL Enum = 0x81F8
	SEPARATE_SPECULAR_COLOR   Enum = 0x81FA
	MIRRORED_REPEAT           Enum = 0x8370

	TEXTURE0          Enum = 0x84C0
	MAX_TEXTURE_UNITS Enum = 0x84E2

	TEXTURE_MAX_ANISOTROPY_EXT     Enum = 0x84FE
	MAX_TEXTURE_MAX_ANISOTROPY_EXT Enum = 0x84FF

	NORMAL_MAP                  Enum = 0x8511
	REFLECTION_MAP              Enum = 0x8512
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515

	COMBINE        Enum = 0x8570
	COMBINE_RGB    Enum = 0x8571
	COMBINE_ALPHA  Enum = 0x8572
	RGB_SCALE      Enum = 0x8573
	ADD_SIGNED     Enum = 0x8574
	INTERPOLATE    Enum = 0x8575
	CONSTANT       Enum = 0x8576
	PRIMARY_COLOR  Enum = 0x8577
	PREVIOUS       Enum = 0x8578
	SOURCE0_RGB    Enum = 0x8580
	SOURCE1_RGB    Enum = 0x8581
	SOURCE2_RGB    Enum = 0x8582
	SOURCE0_ALPHA  Enum = 0x8588
	SOURCE1_ALPHA  Enum = 0x8589
	SOURCE2_ALPHA  Enum = 0x858A
	OPERAND0_RGB   Enum = 0x8590
	OPERAND1_RGB   Enum = 0x8591
	OPERAND2_RGB   Enum = 0x8592
	OPERAND0_ALPHA Enum = 0x8598
	OPERAND1_ALPHA Enum = 0x8599
	OPERAND2_ALPHA Enum = 0x859A
	DOT3_RGB       Enum = 0x86AE

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	READ_ONLY            Enum = 0x88B8
	WRITE_ONLY           Enum = 0x88B9
	READ_WRITE           Enum = 0x88BA
	STREAM_DRAW          Enum = 0x88E0
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8
)
