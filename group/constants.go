package group

import (
	"fmt"
	"math/big"
	"strings"
)

// The production groups. P has its top and bottom 256 bits set and the
// binary expansion of ln(2) in between, adjusted by a small delta so that P is
// prime and Q divides P-1. G = 2^R mod P with R = (P-1)/Q.

const qHex = `
	FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFF43
`

const p4096Hex = `
	FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF
	B17217F7 D1CF79AB C9E3B398 03F2F6AF 40F34326 7298B62D 8A0D175B 8BAAFA2B
	E7B87620 6DEBAC98 559552FB 4AFA1B10 ED2EAE35 C1382144 27573B29 1169B825
	3E96CA16 224AE8C5 1ACBDA11 317C387E B9EA9BC3 B136603B 256FA0EC 7657F74B
	72CE87B1 9D6548CA F5DFA6BD 38303248 655FA187 2F20E3A2 DA2D97C5 0F3FD5C6
	07F4CA11 FB5BFB90 610D30F8 8FE551A2 EE569D6D FC1EFA15 7D2E23DE 1400B396
	17460775 DB8990E5 C943E732 B479CD33 CCCC4E65 9393514C 4C1A1E0B D1D6095D
	25669B33 3564A337 6A9C7F8A 5E148E82 074DB601 5CFE7AA3 0C480A54 17350D2C
	955D5179 B1E17B9D AE313CDB 6C606CB1 078F735D 1B2DB31B 5F50B518 5064C18B
	4D162DB3 B365853D 7598A195 1AE273EE 5570B6C6 8F969834 96D4E6D3 30AF889B
	44A02554 731CDC8E A17293D1 228A4EF9 8D6F5177 FBCF0755 268A5C1F 9538B982
	61AFFD44 6B1CA3CF 5E9222B8 8C66D3C5 422183ED C9942109 0BBB16FA F3D949F2
	36E02B20 CEE886B9 05C128D5 3D0BD2F9 62136319 6AF50302 0060E499 08391A0C
	57339BA2 BEBA7D05 2AC5B61C C4E9207C EF2F0CE2 D7373958 D7622658 901E7B55
	FB5F2DA4 B7510058 92D35689 0DEFE9CA D9B9D4B7 13E06162 A2D8FDD0 FB23357B
	FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF
`

const r4096Hex = `
	00000001 00000000 00000000 00000000 00000000 00000000 00000000 00000000
	000000BC B17217F7 D1CF79AB C9E3B398 03F2F6AF 40F34326 7298B62D 8A0D175B
	8BAB857A E8F42816 5418806C 62B0EA36 355A3A73 E0C74198 5BF6A0E3 130179BF
	2F0B43E3 3AD86292 3861B8C9 F768C416 9519600B AD06093F 964B27E0 2D868312
	31A9160D E48F4DA5 3D8AB5E6 9E386B69 4BEC1AE7 22D47579 249D5424 767C5C33
	B9151E07 C5C11D10 6AC446D3 30B47DB5 9D352E47 A53157DE 04461900 F6FE360D
	B897DF53 16D87C94 AE71DAD0 BE84B647 C4BCF818 C23A2D4E BB53C702 A5C8062D
	19F5E9B5 033A94F7 FF732F54 12971286 9D97B8C9 6C412921 A9D86797 70F499A0
	41C297CF F79D4C91 49EB6CAF 67B9EA3D C563D965 F3AAD137 7FF22DE9 C3E62068
	DD0ED615 1C37B4F7 4634C2BD 09DA912F D599F433 3A8D2CC0 05627DCA 37BAD43E
	64A39631 19C0BFE3 4810A21E E7CFC421 D53398CB C7A95B3B F585E5A0 4B790E2F
	E1FE9BC2 64FDA810 9F6454A0 82F5EFB2 F37EA237 AA29DF32 0D6EA860 C41A9054
	CCD24876 C6253F66 7BFB0139 B5531FF3 01899612 02FD2B0D 55A75272 C7FD7334
	3F7899BC A0B36A4C 470A64A0 09244C84 E77CEBC9 2417D5BB 13BF1816 7D8033EB
	6C27FB98 9FD4A7F5 29FD4A7F 529FD4A7 F529FD4A 7F529FD4 A7F529FD 4A7F529F
	D4A7F52A
`

const g4096Hex = `
	F9553B6E 088C3AE7 076BFD13 D2839EB8 204DE6FB 47928C8B DA5A3F7D A4BA27BA
	650B8DC0 8A20D25E 293B86A0 C9E5C950 7EFCD5D0 1E255A5C 05EEEB84 17ED52C1
	ADF6FA55 4D20762D 7EE6BFC3 407A3727 E4E952E3 3DEAEA51 280B179C 1C40075B
	54F2FACB DD1C825B 282DB381 FD785625 AF2FD35F 7A1504B5 9681631D B27BE727
	21D97F61 7F24375E 2E24E260 0C864D6F 55A13495 BF6B1B64 A39D9A1D B4B39CC4
	290CB99B 9B89A630 10E4FA90 EF5C712C 44825447 0BF9197B 33685814 69995F47
	13F11E9C 7D7B0EFB 97FE04F0 5F5EA784 DC11FD54 74A644B0 D4CDA8CE D1B62C7C
	06EC91C9 69D372C5 41A4F5CE FD734646 F973AC43 F736923B CE37CA80 5954B7BB
	8D0F0B9F 78311511 4A3DE9DC D6FEC931 9B64F22D 014628ED 6B297B2C 495D4900
	8DE86CC5 C52CD866 E3E96BEB B6AB25AD FC86B906 3B2C995F EDB3C071 3490EF33
	56347A60 F63A1DE3 26AC7718 A17F2708 0CE89F8D C86787F4 879970E8 612D8012
	F7E1BEC1 29D36CE4 784F6355 32BEFD6A B3445108 A25F743B 6670BAE2 8A48EAB8
	F89EDEA2 3FE67781 2D2939C3 F96BAFB2 72E4DD77 136249AC BF3ED294 CE92CA57
	52A80D3D C0677385 292A883B EA76A515 CFD0FA20 B903728F AF5D164C 4C2D9A25
	8F318D82 24BB090E 8B4D8ED9 6D42BB89 F3F745B9 C17E27C8 9234FBE1 98E1DBA8
	31D90476 CA84FD98 D5E2762F F3F8122B 019B3329 2A2C3CA6 7C39F28F 8EB30A4A
`

const p3072Hex = `
	FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF
	B17217F7 D1CF79AB C9E3B398 03F2F6AF 40F34326 7298B62D 8A0D175B 8BAAFA2B
	E7B87620 6DEBAC98 559552FB 4AFA1B10 ED2EAE35 C1382144 27573B29 1169B825
	3E96CA16 224AE8C5 1ACBDA11 317C387E B9EA9BC3 B136603B 256FA0EC 7657F74B
	72CE87B1 9D6548CA F5DFA6BD 38303248 655FA187 2F20E3A2 DA2D97C5 0F3FD5C6
	07F4CA11 FB5BFB90 610D30F8 8FE551A2 EE569D6D FC1EFA15 7D2E23DE 1400B396
	17460775 DB8990E5 C943E732 B479CD33 CCCC4E65 9393514C 4C1A1E0B D1D6095D
	25669B33 3564A337 6A9C7F8A 5E148E82 074DB601 5CFE7AA3 0C480A54 17350D2C
	955D5179 B1E17B9D AE313CDB 6C606CB1 078F735D 1B2DB31B 5F50B518 5064C18B
	4D162DB3 B365853D 7598A195 1AE273EE 5570B6C6 8F969834 96D4E6D3 30AF8B04
	CAB40D66 550984EF 0C42A457 4280B378 45189610 AE3E4BB2 2590A08F 87E04B01
	FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF
`

const r3072Hex = `
	00000001 00000000 00000000 00000000 00000000 00000000 00000000 00000000
	000000BC B17217F7 D1CF79AB C9E3B398 03F2F6AF 40F34326 7298B62D 8A0D175B
	8BAB857A E8F42816 5418806C 62B0EA36 355A3A73 E0C74198 5BF6A0E3 130179BF
	2F0B43E3 3AD86292 3861B8C9 F768C416 9519600B AD06093F 964B27E0 2D868312
	31A9160D E48F4DA5 3D8AB5E6 9E386B69 4BEC1AE7 22D47579 249D5424 767C5C33
	B9151E07 C5C11D10 6AC446D3 30B47DB5 9D352E47 A53157DE 04461900 F6FE360D
	B897DF53 16D87C94 AE71DAD0 BE84B647 C4BCF818 C23A2D4E BB53C702 A5C8062D
	19F5E9B5 033A94F7 FF732F54 12971286 9D97B8C9 6C412921 A9D86797 70F499A0
	41C297CF F79D4C91 49EB6CAF 67B9EA3D C563D965 F3AAD137 7FF22DE9 C3E62068
	DD0ED615 1C37B4F7 4634C2BD 09DA912F D599F433 3A8D2CC0 05627DCA 37BAD43E
	64A3989A 9FD4A7F5 29FD4A7F 529FD4A7 F529FD4A 7F529FD4 A7F529FD 4A7F529F
	D4A7F52A
`

const g3072Hex = `
	9EBB4F74 E681FA22 152AF088 8C588C5D 7F6526F6 FC16A083 3E8AE7B5 C52AA033
	29DB2E99 875DAEAD 0B8D2B0B EA010D89 BC290868 C7F35B6C 06B565EA 83F36C15
	4AD2FF75 26CC4EFD 22E5E1D4 9B32C7F5 6EF4D40E CFA2C3CD CB5F0505 A1014EE9
	A910A0C0 5BE90D31 D7815138 5E75CE47 0ABDF210 25DCB116 74A18852 BFFE051D
	0A08FF8A C8296936 9575DA74 4BA436A5 CB0EBF0C 9A29EEA4 162414BC 225D61C1
	3F5BB89A DFBB4DFD 6789E352 81AE1255 1B63ECC8 C676774D 6E97A985 B31FFC28
	ADC422E5 2AF488D3 AC3F7517 15BA7BD9 CD16D43E DA6E867E 8B09CA3D CE08E46D
	2063928F 61B390DD A9502A53 2C809495 6CE7DE4C B13B0736 26559DCE F94916E0
	2C2F4FA9 E3524AFB 2286B545 7B50330D 09C42054 023076C8 AD4D3985 36642473
	0850ABAD B27D2786 7F94DA6C 34AB54F9 19FE1E19 28190EB8 20657F3B E39988B2
	377AFE4C F9D7E8D0 31A26FDE 164D2826 AC0A9C24 63155588 733FC1C4 3D5229F8
	803D20F8 0C2ADD81 500CA2EA 21D41440 0FD1B8C2 CB6B598D 9C603802 1BC74E90
`

// The tiny group exists only to make test suites fast.
const (
	tinyP = 65267
	tinyQ = 32633
	tinyR = 2
	tinyG = 3
)

func mustParseHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Join(strings.Fields(s), ""), 16)
	if !ok {
		panic(fmt.Sprintf("invalid group constant %q", s))
	}
	return v
}
